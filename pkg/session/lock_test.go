package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/switchyard/pkg/adapters/memory"
	"github.com/aretw0/switchyard/pkg/phone"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(phone.Simple().MustBuild(), memory.NewStore())
	ctx := context.Background()
	count := 1000

	for i := 0; i < count; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_, _ = mgr.Start(ctx, sid)
		_, _ = mgr.Fire(ctx, sid, "dial")
		_ = mgr.End(ctx, sid)
	}

	if lockCount := len(mgr.locks); lockCount != 0 {
		t.Errorf("memory leak detected: %d locks remaining after End", lockCount)
	}
}
