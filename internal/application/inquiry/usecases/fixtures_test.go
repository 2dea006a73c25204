package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

const (
	testOwnerID     = uint(10)
	testModeratorID = uint(20)
	testInquirySID  = "inq_abc123"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func testSanitizer() markdown.MarkdownService {
	return markdown.NewMarkdownService()
}

func storedInquiry(t *testing.T, solved bool) *inquiry.Inquiry {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	inq, err := inquiry.ReconstructInquiry(1, testInquirySID, 1, "Wrong score posted", testOwnerID, solved, now, now, now)
	require.NoError(t, err)
	return inq
}

func storedAssignment(t *testing.T, inCharge bool) *inquiry.Assignment {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	a, err := inquiry.ReconstructAssignment(5, 1, testModeratorID, inCharge, now, now)
	require.NoError(t, err)
	return a
}
