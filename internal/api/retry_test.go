package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.BaseDelay != time.Second {
		t.Errorf("BaseDelay = %v, want 1s", cfg.BaseDelay)
	}
	if cfg.MaxDelay != 30*time.Second {
		t.Errorf("MaxDelay = %v, want 30s", cfg.MaxDelay)
	}
}

func TestRetryConfig_RetryableOn(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		statusCode int
		expected   bool
	}{
		{200, false},
		{400, false},
		{401, false},
		{404, false},
		{408, true},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
	}

	for _, tt := range tests {
		if got := cfg.RetryableOn(tt.statusCode); got != tt.expected {
			t.Errorf("RetryableOn(%d) = %v, want %v", tt.statusCode, got, tt.expected)
		}
	}
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	if !cfg.ShouldRetry(0, 503) {
		t.Error("ShouldRetry(0, 503) = false, want true")
	}
	if cfg.ShouldRetry(3, 503) {
		t.Error("ShouldRetry(3, 503) = true, want false (max retries reached)")
	}
	if cfg.ShouldRetry(0, 400) {
		t.Error("ShouldRetry(0, 400) = true, want false")
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries: 5,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
	}

	if got := cfg.Delay(0); got != 100*time.Millisecond {
		t.Errorf("Delay(0) = %v, want 100ms", got)
	}
	if got := cfg.Delay(1); got != 200*time.Millisecond {
		t.Errorf("Delay(1) = %v, want 200ms", got)
	}
	// Capped at MaxDelay
	if got := cfg.Delay(10); got != time.Second {
		t.Errorf("Delay(10) = %v, want 1s", got)
	}
}

func TestRetryConfig_DelayJitterBounds(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}

	for i := 0; i < 50; i++ {
		delay := cfg.Delay(0)
		if delay < 80*time.Millisecond || delay > 120*time.Millisecond {
			t.Fatalf("Delay(0) = %v, want within [80ms, 120ms]", delay)
		}
	}
}

func TestRetryConfig_WaitContextCancelled(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries: 1,
		BaseDelay:  time.Minute,
		MaxDelay:   time.Minute,
		Multiplier: 1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cfg.Wait(ctx, 0); err == nil {
		t.Error("Wait() with cancelled context should return error")
	}
}
