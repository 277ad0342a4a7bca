package reminder

import (
	"context"
	"testing"

	"appointment-reminder-go/internal/appointments"
	"appointment-reminder-go/internal/config"
	"appointment-reminder-go/internal/model"
)

func TestSchedulerRestart(t *testing.T) {
	service := appointments.NewService(&memStore{})
	processor := NewProcessor(service, &fakeNotifier{}, nil, nil, nil, 0)
	sched := NewScheduler(&config.SchedulerConfig{IntervalMinutes: 60}, processor, nil)

	if err := sched.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if !sched.IsRunning() {
		t.Fatalf("scheduler should be running after Start")
	}
	if err := sched.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if sched.IsRunning() {
		t.Fatalf("scheduler should not be running after Stop")
	}
	if err := sched.Start(); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if !sched.IsRunning() {
		t.Fatalf("scheduler should be running after second Start")
	}
	// context should be active
	if sched.ctx == nil || sched.ctx.Err() != nil {
		t.Fatalf("scheduler context should be active after restart")
	}
	sched.Stop()
}

func TestSchedulerDoubleStart(t *testing.T) {
	service := appointments.NewService(&memStore{})
	processor := NewProcessor(service, &fakeNotifier{}, nil, nil, nil, 0)
	sched := NewScheduler(&config.SchedulerConfig{IntervalMinutes: 60}, processor, nil)

	if err := sched.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer sched.Stop()
	if err := sched.Start(); err == nil {
		t.Fatalf("second Start on a running scheduler should fail")
	}
}

func TestSchedulerRunOnceReturnsResults(t *testing.T) {
	service := appointments.NewService(&memStore{})
	processor := NewProcessor(service, &fakeNotifier{}, nil, nil, nil, 0)
	sched := NewScheduler(&config.SchedulerConfig{IntervalMinutes: 60}, processor, nil)

	results := sched.RunOnce(context.Background())
	for _, kind := range []model.ReminderKind{model.Reminder24h, model.Reminder4h, model.Reminder1h, model.ReminderEmail} {
		if _, ok := results[kind]; !ok {
			t.Fatalf("RunOnce results missing %s", kind)
		}
	}
}
