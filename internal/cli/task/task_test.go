package task

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/models"
	clitest "github.com/thenoetrevino/tasklane/internal/testutil/cli"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, output string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(output), &env), output)
	return env
}

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	return clitest.ExecuteCLICommand(t, a, TaskCmd(), args)
}

func createTask(t *testing.T, a *app.App, title string, extra ...string) string {
	t.Helper()
	out, err := run(t, a, append([]string{"create", "--title", title, "--quiet"}, extra...)...)
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func addCategory(t *testing.T, a *app.App, name string) models.Category {
	t.Helper()
	c, err := a.Store.AddCategory(context.Background(), name)
	require.NoError(t, err)
	return c
}

func TestCreate(t *testing.T) {
	a := clitest.SetupCLITest(t)
	work := addCategory(t, a, "Work")

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "defaults to the default category",
			args: []string{"--title", "Buy milk"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Task 'Buy milk' created")
				assert.Contains(t, output, "Category: General")
			},
		},
		{
			name: "category by name",
			args: []string{"--title", "Ship it", "--category", "work", "--json"},
			checkFunc: func(t *testing.T, output string) {
				env := decode(t, output)
				require.True(t, env.Success)
				var v cli.TaskView
				require.NoError(t, json.Unmarshal(env.Data, &v))
				assert.Equal(t, "Ship it", v.Title)
				assert.Equal(t, "todo", v.Status)
				assert.Equal(t, work.ID, v.CategoryID)
				assert.Equal(t, 0, v.Position)
			},
		},
		{
			name: "title is trimmed",
			args: []string{"--title", "  spaced  ", "--json"},
			checkFunc: func(t *testing.T, output string) {
				var v cli.TaskView
				require.NoError(t, json.Unmarshal(decode(t, output).Data, &v))
				assert.Equal(t, "spaced", v.Title)
			},
		},
		{
			name:     "blank title",
			args:     []string{"--title", "   ", "--json"},
			wantCode: cli.ExitValidation,
			checkFunc: func(t *testing.T, output string) {
				env := decode(t, output)
				assert.False(t, env.Success)
				assert.Equal(t, "INVALID_TITLE", env.Error.Code)
			},
		},
		{
			name:     "unknown category",
			args:     []string{"--title", "x", "--category", "Nope", "--json"},
			wantCode: cli.ExitNotFound,
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "CATEGORY_NOT_FOUND", decode(t, output).Error.Code)
			},
		},
		{
			name:     "missing title flag",
			args:     []string{},
			wantCode: cli.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, a, append([]string{"create"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestCreate_QuietPrintsID(t *testing.T) {
	a := clitest.SetupCLITest(t)

	id := createTask(t, a, "Buy milk")

	task, ok := a.Store.Task(id)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, a.Store.DefaultCategory().TaskIDs, []string{id})
}

func TestList(t *testing.T) {
	a := clitest.SetupCLITest(t)
	work := addCategory(t, a, "Work")
	banana := createTask(t, a, "banana")
	apple := createTask(t, a, "apple")
	cherry := createTask(t, a, "Cherry", "--category", work.ID)
	_, err := run(t, a, "update", "--id", apple, "--status", "done")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "newest first by default", want: []string{cherry, apple, banana}},
		{name: "by title", args: []string{"--sort", "title"}, want: []string{apple, banana, cherry}},
		{name: "by status", args: []string{"--sort", "status"}, want: []string{banana, cherry, apple}},
		{name: "status filter", args: []string{"--status", "done"}, want: []string{apple}},
		{name: "category filter by name", args: []string{"--category", "Work"}, want: []string{cherry}},
		{name: "both filters", args: []string{"--category", "General", "--status", "in-progress"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, a, append([]string{"list", "--quiet"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Fields(output))
		})
	}
}

func TestList_SortTiesKeepCreationOrder(t *testing.T) {
	a := clitest.SetupCLITest(t)
	first := createTask(t, a, "same")
	second := createTask(t, a, "same")

	for _, key := range []string{"status", "title"} {
		output, err := run(t, a, "list", "--quiet", "--sort", key)
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, strings.Fields(output), key)
	}
}

func TestList_Errors(t *testing.T) {
	a := clitest.SetupCLITest(t)

	_, err := run(t, a, "list", "--sort", "priority")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = run(t, a, "list", "--status", "blocked")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = run(t, a, "list", "--category", "Missing")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestList_Empty(t *testing.T) {
	a := clitest.SetupCLITest(t)

	output, err := run(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")

	output, err = run(t, a, "list", "--json")
	require.NoError(t, err)
	env := decode(t, output)
	assert.True(t, env.Success)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestShow(t *testing.T) {
	a := clitest.SetupCLITest(t)
	createTask(t, a, "first")
	id := createTask(t, a, "second")

	output, err := run(t, a, "show", id, "--json")
	require.NoError(t, err)
	var v cli.TaskView
	require.NoError(t, json.Unmarshal(decode(t, output).Data, &v))
	assert.Equal(t, "second", v.Title)
	assert.Equal(t, "General", v.CategoryName)
	assert.Equal(t, 1, v.Position)
	assert.True(t, clitest.Epoch.Add(time.Minute).Equal(v.CreatedAt), v.CreatedAt)

	output, err = run(t, a, "show", "--id", id)
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	_, err = run(t, a, "show")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = run(t, a, "show", "missing")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestUpdate(t *testing.T) {
	a := clitest.SetupCLITest(t)
	work := addCategory(t, a, "Work")
	first := createTask(t, a, "first", "--category", "Work")
	id := createTask(t, a, "second")

	output, err := run(t, a, "update", "--id", id, "--title", "renamed", "--status", "in progress", "--category", "Work")
	require.NoError(t, err)
	assert.Contains(t, output, "Task 'renamed' updated")

	task, _ := a.Store.Task(id)
	assert.Equal(t, "renamed", task.Title)
	assert.Equal(t, models.StatusInProgress, task.Status)
	assert.Equal(t, work.ID, task.CategoryID)

	moved, _ := a.Store.Category(work.ID)
	assert.Equal(t, []string{first, id}, moved.TaskIDs)
	assert.Empty(t, a.Store.DefaultCategory().TaskIDs)
}

func TestUpdate_OnlyChangedFields(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id := createTask(t, a, "keep me")

	_, err := run(t, a, "update", "--id", id, "--status", "done")
	require.NoError(t, err)

	task, _ := a.Store.Task(id)
	assert.Equal(t, "keep me", task.Title)
	assert.Equal(t, models.StatusDone, task.Status)
}

func TestUpdate_Errors(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id := createTask(t, a, "task")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "no changes", args: []string{"--id", id}, wantCode: cli.ExitUsage, wantErr: "NO_UPDATES"},
		{name: "unknown task", args: []string{"--id", "nope", "--title", "x"}, wantCode: cli.ExitNotFound, wantErr: "TASK_NOT_FOUND"},
		{name: "blank title", args: []string{"--id", id, "--title", ""}, wantCode: cli.ExitValidation, wantErr: "INVALID_TITLE"},
		{name: "bad status", args: []string{"--id", id, "--status", "blocked"}, wantCode: cli.ExitValidation, wantErr: "INVALID_STATUS"},
		{name: "unknown category", args: []string{"--id", id, "--category", "nope"}, wantCode: cli.ExitNotFound, wantErr: "CATEGORY_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, a, append([]string{"update", "--json"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			assert.Equal(t, tt.wantErr, decode(t, output).Error.Code)
		})
	}

	task, _ := a.Store.Task(id)
	assert.Equal(t, "task", task.Title)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestMove(t *testing.T) {
	a := clitest.SetupCLITest(t)
	work := addCategory(t, a, "Work")
	a1 := createTask(t, a, "a1")
	a2 := createTask(t, a, "a2")
	w1 := createTask(t, a, "w1", "--category", "Work")

	output, err := run(t, a, "move", "--id", a2, "--category", "Work", "--index", "0")
	require.NoError(t, err)
	assert.Contains(t, output, "moved to Work (position 1)")

	dest, _ := a.Store.Category(work.ID)
	assert.Equal(t, []string{a2, w1}, dest.TaskIDs)
	assert.Equal(t, []string{a1}, a.Store.DefaultCategory().TaskIDs)

	// no index appends
	_, err = run(t, a, "move", "--id", a1, "--category", work.ID)
	require.NoError(t, err)
	dest, _ = a.Store.Category(work.ID)
	assert.Equal(t, []string{a2, w1, a1}, dest.TaskIDs)

	// reorder within a category, clamped
	_, err = run(t, a, "move", "--id", a2, "--category", "Work", "--index", "99")
	require.NoError(t, err)
	dest, _ = a.Store.Category(work.ID)
	assert.Equal(t, []string{w1, a1, a2}, dest.TaskIDs)

	// within a category to the end
	_, err = run(t, a, "move", "--id", w1, "--category", "Work")
	require.NoError(t, err)
	dest, _ = a.Store.Category(work.ID)
	assert.Equal(t, []string{a1, a2, w1}, dest.TaskIDs)

	// a negative index clamps to the front
	_, err = run(t, a, "move", "--id", w1, "--category", "Work", "--index=-3")
	require.NoError(t, err)
	dest, _ = a.Store.Category(work.ID)
	assert.Equal(t, []string{w1, a1, a2}, dest.TaskIDs)
}

func TestMove_Errors(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id := createTask(t, a, "task")

	_, err := run(t, a, "move", "--id", "nope", "--category", "General")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = run(t, a, "move", "--id", id, "--category", "nope")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = run(t, a, "move", "--id", id)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	assert.Equal(t, []string{id}, a.Store.DefaultCategory().TaskIDs)
}

func TestDelete(t *testing.T) {
	a := clitest.SetupCLITest(t)
	keep := createTask(t, a, "keep")
	id := createTask(t, a, "drop")

	output, err := run(t, a, "delete", "--id", id, "--force")
	require.NoError(t, err)
	assert.Contains(t, output, "Task 'drop' deleted")

	_, ok := a.Store.Task(id)
	assert.False(t, ok)
	assert.Equal(t, []string{keep}, a.Store.DefaultCategory().TaskIDs)

	output, err = run(t, a, "delete", "--id", keep, "--json")
	require.NoError(t, err)
	assert.True(t, decode(t, output).Success)
	assert.Empty(t, a.Store.Tasks())

	_, err = run(t, a, "delete", "--id", id, "--force")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestCommandsWithoutApp(t *testing.T) {
	cmd := TaskCmd()
	cmd.SetArgs([]string{"list"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(context.Background())
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.ErrorIs(t, err, cli.ErrNoApp)
}
