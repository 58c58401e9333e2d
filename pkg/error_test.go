package pkg

import (
	"errors"
	"testing"
)

func TestSubmitStatus_String(t *testing.T) {
	tests := []struct {
		status SubmitStatus
		want   string
	}{
		{SubmitAccepted, "accepted"},
		{SubmitBusy, "busy"},
		{SubmitDropped, "dropped"},
		{SubmitStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("SubmitStatus.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitStatus_Error(t *testing.T) {
	tests := []struct {
		status  SubmitStatus
		wantErr error
	}{
		{SubmitAccepted, nil},
		{SubmitBusy, ErrBusy},
		{SubmitDropped, ErrBusy},
		{SubmitStatus(99), ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			err := tt.status.Error()
			if tt.wantErr == nil && err != nil {
				t.Errorf("SubmitStatus.Error() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitStatus.Error() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrBusy,
		ErrNotConfigured,
		ErrInvalidPosition,
		ErrLayerOutOfRange,
		ErrBaseLayerTransparent,
		ErrLayerShape,
		ErrBufferTooSmall,
		ErrInvalidParameter,
		ErrAlreadyRunning,
		ErrNotRunning,
		ErrUnknownKeyName,
		ErrNoBaseLayer,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrBusy, "transport busy"},
		{ErrInvalidPosition, "invalid key position"},
		{ErrLayerOutOfRange, "layer index out of range"},
		{ErrAlreadyRunning, "already running"},
		{ErrUnknownKeyName, "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}
