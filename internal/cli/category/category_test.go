package category

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/store"
	clitest "github.com/thenoetrevino/tasklane/internal/testutil/cli"
)

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	return clitest.ExecuteCLICommand(t, a, CategoryCmd(), args)
}

func errorCode(t *testing.T, output string) string {
	t.Helper()
	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &env), output)
	assert.False(t, env.Success)
	return env.Error.Code
}

func TestCreate(t *testing.T) {
	a := clitest.SetupCLITest(t)

	output, err := run(t, a, "create", "--name", "Work")
	require.NoError(t, err)
	assert.Contains(t, output, "Category 'Work' created")

	output, err = run(t, a, "create", "--name", "  Later ", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(output)
	c, ok := a.Store.Category(id)
	require.True(t, ok)
	assert.Equal(t, "Later", c.Name)
	assert.Empty(t, c.TaskIDs)

	names := []string{}
	for _, c := range a.Store.Categories() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"General", "Work", "Later"}, names)
}

func TestCreate_Invalid(t *testing.T) {
	a := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "blank name", args: []string{"--name", " ", "--json"}, wantCode: cli.ExitValidation},
		{name: "name too long", args: []string{"--name", strings.Repeat("n", 51), "--json"}, wantCode: cli.ExitValidation},
		{name: "missing name", args: []string{}, wantCode: cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, a, append([]string{"create"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.wantCode == cli.ExitValidation {
				assert.Equal(t, "INVALID_NAME", errorCode(t, output))
			}
		})
	}
	assert.Len(t, a.Store.Categories(), 1)
}

func TestList(t *testing.T) {
	a := clitest.SetupCLITest(t)
	work, err := a.Store.AddCategory(context.Background(), "Work")
	require.NoError(t, err)
	task, err := a.Store.AddTask(context.Background(), store.NewTask{Title: "t", CategoryID: work.ID})
	require.NoError(t, err)

	output, err := run(t, a, "list", "--json")
	require.NoError(t, err)

	var env struct {
		Data cli.CategoryList `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &env))
	require.Len(t, env.Data, 2)
	assert.Equal(t, "General", env.Data[0].Name)
	assert.Equal(t, 0, env.Data[0].TaskCount)
	assert.Equal(t, []string{}, env.Data[0].TaskIDs)
	assert.Equal(t, "Work", env.Data[1].Name)
	assert.Equal(t, []string{task.ID}, env.Data[1].TaskIDs)

	output, err = run(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "(1 tasks)")

	output, err = run(t, a, "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{a.Store.DefaultCategory().ID, work.ID}, strings.Fields(output))
}

func TestRename(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id := a.Store.DefaultCategory().ID

	output, err := run(t, a, "rename", "--id", id, "--name", "Inbox")
	require.NoError(t, err)
	assert.Contains(t, output, "Category 'General' renamed to 'Inbox'")

	c, _ := a.Store.Category(id)
	assert.Equal(t, "Inbox", c.Name)

	output, err = run(t, a, "rename", "--id", id, "--name", "", "--json")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, "INVALID_NAME", errorCode(t, output))

	output, err = run(t, a, "rename", "--id", "nope", "--name", "x", "--json")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, "CATEGORY_NOT_FOUND", errorCode(t, output))
}

func TestDelete(t *testing.T) {
	a := clitest.SetupCLITest(t)
	ctx := context.Background()
	empty, err := a.Store.AddCategory(ctx, "Empty")
	require.NoError(t, err)
	busy, err := a.Store.AddCategory(ctx, "Busy")
	require.NoError(t, err)
	_, err = a.Store.AddTask(ctx, store.NewTask{Title: "t", CategoryID: busy.ID})
	require.NoError(t, err)

	output, err := run(t, a, "delete", "--name", "busy", "--json")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, "CATEGORY_NOT_EMPTY", errorCode(t, output))
	_, ok := a.Store.Category(busy.ID)
	assert.True(t, ok)

	output, err = run(t, a, "delete", "--id", empty.ID, "--force")
	require.NoError(t, err)
	assert.Contains(t, output, "Category 'Empty' deleted")
	_, ok = a.Store.Category(empty.ID)
	assert.False(t, ok)

	_, err = run(t, a, "delete", "--id", empty.ID, "--force")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = run(t, a, "delete", "--force")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = run(t, a, "delete", "--id", busy.ID, "--name", "Busy")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
