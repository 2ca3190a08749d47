package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestUsecase(repo *fakeRepo, chain *fakeChain, dispatcher *fakeDispatcher, policy alert.TriggerPolicy) *usecase {
	uc := New(log.NewNoop(), Config{
		Repository: repo,
		Chain:      chain,
		Dispatcher: dispatcher,
		Policy:     policy,
	}).(*usecase)
	uc.clock = func() time.Time { return time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func storedOpenAlert(repo *fakeRepo, threshold float64) model.Alert {
	a := model.Alert{
		ID:             primitive.NewObjectID(),
		MangoAccountPk: "9BVcYqEQxyccuwznvxXqDkSJFavvTyheiTYk231T1A8S",
		MangoGroupPk:   "98pjRuQjK3qA6gXts96PqZT4Ze5QmnCmt3QYjhbUSPue",
		Health:         threshold,
		AlertProvider:  model.ProviderMail,
		Email:          "a@b.com",
		Open:           true,
		Timestamp:      time.Now(),
	}
	repo.alerts[a.ID] = a
	return a
}

func TestEvaluate_BreachBoundary(t *testing.T) {
	tests := []struct {
		name         string
		threshold    float64
		health       float64
		wantDispatch bool
	}{
		{name: "health above threshold", threshold: 5, health: 5.01, wantDispatch: false},
		{name: "health equals threshold", threshold: 5, health: 5, wantDispatch: true},
		{name: "health below threshold", threshold: 5, health: 4, wantDispatch: true},
		{name: "healthy account", threshold: 10, health: 250, wantDispatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			dispatcher := &fakeDispatcher{result: true}
			uc := newTestUsecase(repo, &fakeChain{health: tt.health}, dispatcher, alert.PolicyClose)
			a := storedOpenAlert(repo, tt.threshold)

			if err := uc.Evaluate(context.Background(), a); err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}

			if got := dispatcher.calls > 0; got != tt.wantDispatch {
				t.Errorf("dispatch called = %v, want %v", got, tt.wantDispatch)
			}

			stored := repo.alerts[a.ID]
			if tt.wantDispatch {
				if stored.Open {
					t.Error("alert still open after successful dispatch")
				}
				if stored.TriggeredTimestamp == nil {
					t.Error("triggered timestamp not stamped")
				}
			} else if !stored.Open {
				t.Error("alert closed without a breach")
			}
		})
	}
}

func TestEvaluate_MessageContent(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{health: 2.5, accountName: "Main Account"}, dispatcher, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if !strings.Contains(dispatcher.lastMsg, "Your health ratio is at or below 5%") {
		t.Errorf("message missing threshold line: %q", dispatcher.lastMsg)
	}
	if !strings.Contains(dispatcher.lastMsg, "Main Account") {
		t.Errorf("message missing account name: %q", dispatcher.lastMsg)
	}
	if !strings.Contains(dispatcher.lastMsg, "https://trade.mango.markets/") {
		t.Errorf("message missing footer link: %q", dispatcher.lastMsg)
	}
}

func TestEvaluate_AccountLabelFallsBackToPk(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{health: 1}, dispatcher, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !strings.Contains(dispatcher.lastMsg, a.MangoAccountPk) {
		t.Errorf("message missing account pk fallback: %q", dispatcher.lastMsg)
	}
}

func TestEvaluate_FailedDispatchKeepsAlertOpen(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: false}
	uc := newTestUsecase(repo, &fakeChain{health: 1}, dispatcher, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if dispatcher.calls != 1 {
		t.Fatalf("dispatch calls = %d, want 1", dispatcher.calls)
	}
	if stored := repo.alerts[a.ID]; !stored.Open {
		t.Error("alert closed even though dispatch reported failure")
	}
}

func TestEvaluate_ChainErrorSkipsAlert(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{err: errors.New("rpc timeout")}, dispatcher, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err == nil {
		t.Fatal("Evaluate() error = nil, want chain error")
	}

	if dispatcher.calls != 0 {
		t.Errorf("dispatch calls = %d, want 0", dispatcher.calls)
	}
	if stored := repo.alerts[a.ID]; !stored.Open {
		t.Error("alert closed despite chain failure")
	}
}

func TestEvaluate_DeletePolicyRemovesAlert(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{health: 1}, dispatcher, alert.PolicyDelete)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if _, ok := repo.alerts[a.ID]; ok {
		t.Error("alert still stored under delete policy")
	}
	if repo.closeCalls != 0 {
		t.Errorf("close calls = %d, want 0 under delete policy", repo.closeCalls)
	}
}

func TestEvaluate_DeletePolicyToleratesMissingRecord(t *testing.T) {
	// The user may delete the alert between selection and trigger.
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{health: 1}, dispatcher, alert.PolicyDelete)
	a := storedOpenAlert(repo, 5)
	delete(repo.alerts, a.ID)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v, want nil when the record is already gone", err)
	}
}

func TestEvaluate_ClosedAlertNotSelected(t *testing.T) {
	// Idempotence comes from selection: the watcher only feeds open
	// alerts, so a closed one never reaches Evaluate again.
	repo := newFakeRepo()
	dispatcher := &fakeDispatcher{result: true}
	uc := newTestUsecase(repo, &fakeChain{health: 1}, dispatcher, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Evaluate(context.Background(), a); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	open, err := uc.OpenAlerts(context.Background())
	if err != nil {
		t.Fatalf("OpenAlerts() error = %v", err)
	}
	if len(open) != 0 {
		t.Errorf("open alerts after close = %d, want 0", len(open))
	}
	if dispatcher.calls != 1 {
		t.Errorf("dispatch calls = %d, want 1", dispatcher.calls)
	}
}
