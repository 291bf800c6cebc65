package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/coupons"

	_ "github.com/mattn/go-sqlite3"
)

func TestSetupJobs(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	cm := NewCronManager(coupons.NewService(client), audit.NewService(client), nil)
	require.NoError(t, cm.SetupJobs())

	cm.Start()
	cm.Stop()
}
