package eventtime

import (
	"testing"
	"time"

	"gemma.link/models"
)

func TestEventTimes(t *testing.T) {
	youngStart, adultStart, end := EventTimes()

	if got := youngStart.Format("2006-01-02 15:04"); got != "2026-03-14 14:00" {
		t.Errorf("youngStart = %s, want 2026-03-14 14:00", got)
	}
	if got := adultStart.Format("2006-01-02 15:04"); got != "2026-03-14 19:00" {
		t.Errorf("adultStart = %s, want 2026-03-14 19:00", got)
	}
	if got := end.Format("2006-01-02 15:04"); got != "2026-03-15 01:00" {
		t.Errorf("end = %s, want 2026-03-15 01:00", got)
	}
	if !youngStart.Before(adultStart) || !adultStart.Before(end) {
		t.Error("beklenen sıra: youngStart < adultStart < end")
	}
}

func TestTargetFor(t *testing.T) {
	youngStart, adultStart, _ := EventTimes()
	young := models.SegmentYoung
	adult := models.SegmentAdult

	tests := []struct {
		name    string
		segment *models.Segment
		want    time.Time
	}{
		{"young", &young, youngStart},
		{"adult", &adult, adultStart},
		{"segment yoksa young varsayilir", nil, youngStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetFor(tt.segment); !got.Equal(tt.want) {
				t.Errorf("TargetFor(%v) = %v, want %v", tt.segment, got, tt.want)
			}
		})
	}
}

func TestComputeCountdown(t *testing.T) {
	target := time.Date(2026, time.March, 14, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Countdown
	}{
		{"tam hedef aninda", target, Countdown{IsPast: true}},
		{"hedef gecmis", target.Add(5 * time.Minute), Countdown{IsPast: true}},
		{"bir dakika kala", target.Add(-1 * time.Minute), Countdown{Days: 0, Hours: 0, Minutes: 1}},
		{"90 dakika kala", target.Add(-90 * time.Minute), Countdown{Days: 0, Hours: 1, Minutes: 30}},
		{"tam bir gun kala", target.Add(-24 * time.Hour), Countdown{Days: 1, Hours: 0, Minutes: 0}},
		{"karisik", target.Add(-(49*time.Hour + 31*time.Minute)), Countdown{Days: 2, Hours: 1, Minutes: 31}},
		{"saniyeler yuvarlanmaz", target.Add(-90 * time.Second), Countdown{Days: 0, Hours: 0, Minutes: 1}},
		{"bir dakikadan az kala gecmis sayilir", target.Add(-30 * time.Second), Countdown{IsPast: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeCountdown(target, tt.now); got != tt.want {
				t.Errorf("ComputeCountdown = %+v, want %+v", got, tt.want)
			}
		})
	}
}
