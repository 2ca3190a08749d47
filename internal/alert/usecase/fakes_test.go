package usecase

import (
	"context"
	"time"

	"mango-alerts-srv/internal/alert/repository"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/mango"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	alerts map[primitive.ObjectID]model.Alert

	createCalls int
	deleteCalls int
	closeCalls  int
	failCreate  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{alerts: map[primitive.ObjectID]model.Alert{}}
}

func (r *fakeRepo) Create(_ context.Context, a model.Alert) (model.Alert, error) {
	r.createCalls++
	if r.failCreate != nil {
		return model.Alert{}, r.failCreate
	}
	a.ID = primitive.NewObjectID()
	r.alerts[a.ID] = a
	return a, nil
}

func (r *fakeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.deleteCalls++
	if _, ok := r.alerts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.alerts, id)
	return nil
}

func (r *fakeRepo) ListByAccount(_ context.Context, accountPk string) ([]model.Alert, error) {
	var res []model.Alert
	for _, a := range r.alerts {
		if a.MangoAccountPk == accountPk {
			res = append(res, a)
		}
	}
	return res, nil
}

func (r *fakeRepo) ListOpen(_ context.Context) ([]model.Alert, error) {
	var res []model.Alert
	for _, a := range r.alerts {
		if a.Open {
			res = append(res, a)
		}
	}
	return res, nil
}

func (r *fakeRepo) Close(_ context.Context, id primitive.ObjectID, triggeredAt time.Time) error {
	r.closeCalls++
	a, ok := r.alerts[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Open = false
	a.TriggeredTimestamp = &triggeredAt
	r.alerts[id] = a
	return nil
}

type fakeChain struct {
	health      float64
	accountName string
	err         error
	validateErr error
}

func (c *fakeChain) GetHealthRatio(_ context.Context, _, _ string) (mango.AccountHealth, error) {
	if c.err != nil {
		return mango.AccountHealth{}, c.err
	}
	return mango.AccountHealth{MaintHealthRatio: c.health, AccountName: c.accountName}, nil
}

func (c *fakeChain) ValidateAccount(_ context.Context, _, _ string) error {
	return c.validateErr
}

type fakeDispatcher struct {
	result   bool
	calls    int
	lastMsg  string
	lastSent model.Alert
}

func (d *fakeDispatcher) Dispatch(_ context.Context, a model.Alert, message string, _ float64) bool {
	d.calls++
	d.lastMsg = message
	d.lastSent = a
	return d.result
}

type fakePhones struct {
	normalized string
	err        error
	lookups    int
}

func (p *fakePhones) SendSMS(_ context.Context, _, _ string) error { return nil }

func (p *fakePhones) LookupNumber(_ context.Context, _ string) (string, error) {
	p.lookups++
	if p.err != nil {
		return "", p.err
	}
	return p.normalized, nil
}
