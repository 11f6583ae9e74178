package services

import (
	"go_trustedbot_backend/pkg/logging"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logging.Init()
	os.Exit(m.Run())
}
