package services

import (
	"time"

	"nutrifit/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert records an alert and pushes it to the user's open sockets. The
// two legs are independent: a missing database still broadcasts and a missing
// hub still records. Safe to call before initialization.
func EmitAlert(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if _alert.db != nil {
		_ = _alert.db.Create(a).Error
	}
	if _alert.rt != nil {
		_alert.rt.Send(userID, RealtimeEvent{Kind: "alert.created", Payload: a})
	}
}

// ListAlerts returns the user's alerts, newest first.
func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
