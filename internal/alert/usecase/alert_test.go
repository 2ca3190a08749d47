package usecase

import (
	"context"
	"testing"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/mango"
)

const (
	testAccountPk = "9BVcYqEQxyccuwznvxXqDkSJFavvTyheiTYk231T1A8S"
	testGroupPk   = "98pjRuQjK3qA6gXts96PqZT4Ze5QmnCmt3QYjhbUSPue"
)

func validMailInput() alert.CreateInput {
	return alert.CreateInput{
		MangoAccountPk: testAccountPk,
		MangoGroupPk:   testGroupPk,
		Health:         10,
		AlertProvider:  model.ProviderMail,
		Email:          "trader@example.com",
	}
}

func TestCreate_Mail(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	created, err := uc.Create(context.Background(), validMailInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID.IsZero() {
		t.Error("created alert has zero id")
	}
	if !created.Open {
		t.Error("created alert not open")
	}
	if created.Timestamp.IsZero() {
		t.Error("created alert missing timestamp")
	}
	if created.TriggeredTimestamp != nil {
		t.Error("new alert already has a triggered timestamp")
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "empty", email: ""},
		{name: "no at sign", email: "traderexample.com"},
		{name: "no domain dot", email: "trader@localhost"},
		{name: "display name form", email: "Trader <trader@example.com>"},
		{name: "spaces", email: "trader @example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

			input := validMailInput()
			input.Email = tt.email
			if _, err := uc.Create(context.Background(), input); err != alert.ErrInvalidEmail {
				t.Errorf("Create() error = %v, want ErrInvalidEmail", err)
			}
			if repo.createCalls != 0 {
				t.Errorf("repo create calls = %d, want 0", repo.createCalls)
			}
		})
	}
}

func TestCreate_UnknownProvider(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	input := validMailInput()
	input.AlertProvider = "pigeon"
	if _, err := uc.Create(context.Background(), input); err != alert.ErrInvalidProvider {
		t.Errorf("Create() error = %v, want ErrInvalidProvider", err)
	}
}

func TestCreate_SMSWithoutTwilio(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	input := validMailInput()
	input.AlertProvider = model.ProviderSMS
	input.Email = ""
	input.PhoneNumber = "+15551234567"
	if _, err := uc.Create(context.Background(), input); err != alert.ErrInvalidProvider {
		t.Errorf("Create() error = %v, want ErrInvalidProvider when SMS is not configured", err)
	}
}

func TestCreate_SMSNormalizesNumber(t *testing.T) {
	repo := newFakeRepo()
	phones := &fakePhones{normalized: "+15551234567"}
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)
	uc.phones = phones

	input := validMailInput()
	input.AlertProvider = model.ProviderSMS
	input.Email = ""
	input.PhoneNumber = "555-123-4567"

	created, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if phones.lookups != 1 {
		t.Errorf("lookup calls = %d, want 1", phones.lookups)
	}
	if created.PhoneNumber != "+15551234567" {
		t.Errorf("stored phone = %q, want normalized form", created.PhoneNumber)
	}
	if created.Email != "" {
		t.Errorf("stored email = %q, want empty for sms alerts", created.Email)
	}
}

func TestCreate_PushRequiresAlertID(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	input := validMailInput()
	input.AlertProvider = model.ProviderPush
	input.Email = ""
	if _, err := uc.Create(context.Background(), input); err != alert.ErrMissingContact {
		t.Errorf("Create() error = %v, want ErrMissingContact", err)
	}
}

func TestCreate_UnknownAccount(t *testing.T) {
	repo := newFakeRepo()
	chain := &fakeChain{validateErr: mango.ErrAccountNotFound}
	uc := newTestUsecase(repo, chain, &fakeDispatcher{}, alert.PolicyClose)

	if _, err := uc.Create(context.Background(), validMailInput()); err != alert.ErrInvalidAccount {
		t.Errorf("Create() error = %v, want ErrInvalidAccount", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("repo create calls = %d, want 0", repo.createCalls)
	}
}

func TestDelete_MalformedID(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	if err := uc.Delete(context.Background(), "not-an-object-id"); err != alert.ErrInvalidID {
		t.Errorf("Delete() error = %v, want ErrInvalidID", err)
	}
	if repo.deleteCalls != 0 {
		t.Errorf("repo delete calls = %d, want 0 for malformed id", repo.deleteCalls)
	}
}

func TestDelete_UnknownIDIsSuccess(t *testing.T) {
	// A well-formed id that no longer exists deletes cleanly; the
	// evaluator may have already removed the record.
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	if err := uc.Delete(context.Background(), "507f1f77bcf86cd799439011"); err != nil {
		t.Errorf("Delete() error = %v, want nil for an absent id", err)
	}
	if repo.deleteCalls != 1 {
		t.Errorf("repo delete calls = %d, want 1", repo.deleteCalls)
	}
}

func TestDelete_RemovesAlert(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	if err := uc.Delete(context.Background(), a.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := repo.alerts[a.ID]; ok {
		t.Error("alert still stored after delete")
	}
}

func TestList_MissingAccount(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)

	if _, err := uc.List(context.Background(), ""); err != alert.ErrMissingAccount {
		t.Errorf("List() error = %v, want ErrMissingAccount", err)
	}
}

func TestList_ProjectsWithoutContacts(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeChain{}, &fakeDispatcher{}, alert.PolicyClose)
	a := storedOpenAlert(repo, 5)

	got, err := uc.List(context.Background(), a.MangoAccountPk)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d summaries, want 1", len(got))
	}

	s := got[0]
	if s.ID != a.ID.Hex() {
		t.Errorf("summary id = %q, want %q", s.ID, a.ID.Hex())
	}
	if s.Health != a.Health || s.AlertProvider != a.AlertProvider || !s.Open {
		t.Errorf("summary fields = %+v, want to mirror the stored alert", s)
	}
}
