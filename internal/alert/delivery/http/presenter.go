package http

import (
	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/model"
)

type createAlertReq struct {
	MangoAccountPk string  `json:"mangoAccountPk"`
	MangoGroupPk   string  `json:"mangoGroupPk"`
	Health         float64 `json:"health"`
	AlertProvider  string  `json:"alertProvider"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phoneNumber"`
	NotifiAlertID  string  `json:"notifiAlertId"`
}

func (req createAlertReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		MangoAccountPk: req.MangoAccountPk,
		MangoGroupPk:   req.MangoGroupPk,
		Health:         req.Health,
		AlertProvider:  model.Provider(req.AlertProvider),
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		NotifiAlertID:  req.NotifiAlertID,
	}
}

type deleteAlertReq struct {
	ID string `json:"id"`
}

type listAlertsResp struct {
	Alerts []alert.Summary `json:"alerts"`
}
