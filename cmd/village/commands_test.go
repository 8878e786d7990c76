package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/config"
	"village/internal/repository"
	"village/internal/service"
)

type testIDs struct{ n int }

func (g *testIDs) NewID() string {
	g.n++
	return "new-" + strconv.Itoa(g.n)
}

func newTestApp(t *testing.T, storage repository.LocalStorage) (*app, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	session := service.NewSessionService(storage, config.DefaultStorageKey)
	require.NoError(t, session.Restore(ctx))

	var out bytes.Buffer
	return &app{
		ctx:       ctx,
		out:       &out,
		session:   session,
		community: service.NewCommunityService(&testIDs{}),
		backup:    service.NewBackupService(storage, config.DefaultStorageKey),
		now:       func() time.Time { return time.Date(2024, 1, 26, 9, 0, 0, 0, time.Local) },
	}, &out
}

func TestProtectedCommandsRequireLogin(t *testing.T) {
	a, _ := newTestApp(t, repository.NewMemoryStorage())

	for _, cmd := range []string{"dashboard", "profile", "playdates", "care", "community", "resources"} {
		t.Run(cmd, func(t *testing.T) {
			assert.ErrorIs(t, a.run([]string{cmd}), service.ErrNoSession)
		})
	}
}

func TestLoginPersistsAcrossRuns(t *testing.T) {
	storage := repository.NewMemoryStorage()
	a, out := newTestApp(t, storage)

	require.NoError(t, a.run([]string{"login", "-email", "me@example.com"}))
	assert.Contains(t, out.String(), "Welcome back, Sarah Johnson!")

	next, out := newTestApp(t, storage)
	require.NoError(t, next.run([]string{"whoami"}))
	assert.Equal(t, "Sarah Johnson <me@example.com>\n", out.String())

	require.NoError(t, next.run([]string{"logout"}))
	again, out := newTestApp(t, storage)
	require.NoError(t, again.run([]string{"whoami"}))
	assert.Equal(t, "Not signed in.\n", out.String())
}

func TestSignupValidatesForm(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())

	err := a.run([]string{"signup", "-name", "Dana", "-email", "dana@example.com", "-password", "a", "-confirm", "b"})
	assert.EqualError(t, err, "confirmPassword: passwords don't match")
	assert.False(t, a.session.IsAuthenticated())

	require.NoError(t, a.run([]string{"signup", "-name", "Dana", "-email", "dana@example.com",
		"-password", "a", "-confirm", "a", "-child-name", "Max", "-child-age", "6", "-child-needs", "ADHD"}))
	assert.Contains(t, out.String(), "Welcome to The Village, Dana!")

	user, ok := a.session.CurrentUser()
	require.True(t, ok)
	assert.False(t, user.Verified)
	require.Len(t, user.Children, 1)
	assert.Equal(t, []string{"ADHD"}, user.Children[0].Needs)
}

func TestProfileUpdate(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	require.NoError(t, a.run([]string{"login"}))

	require.NoError(t, a.run([]string{"profile", "-bio", "Mom of Emma"}))
	assert.Contains(t, out.String(), "Profile updated!")
	assert.Contains(t, out.String(), "Bio:      Mom of Emma")

	user, _ := a.session.CurrentUser()
	assert.Equal(t, "Sarah Johnson", user.Name)
	assert.Equal(t, "San Francisco, CA", user.Location)

	assert.ErrorIs(t, a.run([]string{"profile", "-change-photo"}), service.ErrNotSupported)
}

func TestPlaydatesCommand(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	require.NoError(t, a.run([]string{"login"}))

	require.NoError(t, a.run([]string{"playdates", "-search", "park"}))
	assert.Contains(t, out.String(), "Sensory-Friendly Park Playdate")
	assert.NotContains(t, out.String(), "Art Therapy Session")
	assert.Contains(t, out.String(), "Upcoming (0)")
	assert.Contains(t, out.String(), "Past (1)")

	require.NoError(t, a.run([]string{"playdates", "-join", "2"}))
	p, err := a.community.Playdate("2")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Participants)

	assert.ErrorIs(t, a.run([]string{"playdates", "-join", "99"}), service.ErrPlaydateNotFound)

	out.Reset()
	require.NoError(t, a.run([]string{"playdates", "-create", "-title", "Library Time", "-date", "2024-02-01",
		"-time", "11:00 AM", "-location", "Main Library", "-max", "1", "-needs", "Autism, ADHD"}))
	assert.Contains(t, out.String(), `"Library Time" has ID new-1`)

	created, err := a.community.Playdate("new-1")
	require.NoError(t, err)
	assert.Equal(t, "You", created.Organizer)
	assert.Equal(t, 1, created.Participants)
	assert.Error(t, a.run([]string{"playdates", "-join", "new-1"}))

	err = a.run([]string{"playdates", "-create", "-title", "Missing fields"})
	assert.ErrorContains(t, err, "date is required")
}

func TestCareCommand(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	require.NoError(t, a.run([]string{"login"}))

	require.NoError(t, a.run([]string{"care"}))
	assert.Contains(t, out.String(), "Open (1)")
	assert.Contains(t, out.String(), "Matched (1)")

	require.NoError(t, a.run([]string{"care", "-match", "1"}))
	assert.Contains(t, out.String(), "Thanks for offering help to Sarah Johnson!")
	assert.ErrorIs(t, a.run([]string{"care", "-match", "2"}), service.ErrCareRequestMatched)

	require.NoError(t, a.run([]string{"care", "-create", "-type", "respite-care", "-date", "2024-02-03",
		"-time", "9:00 AM - 1:00 PM", "-children", "1", "-description", "Morning break"}))
	r, err := a.community.CareRequest("new-1")
	require.NoError(t, err)
	assert.Equal(t, "You", r.Requester)

	assert.ErrorContains(t, a.run([]string{"care", "-create", "-type", "pet-sitting"}), "unknown care type")
}

func TestCommunityAndResourcesCommands(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	require.NoError(t, a.run([]string{"login"}))

	require.NoError(t, a.run([]string{"community", "-filter", "autism"}))
	assert.Contains(t, out.String(), "1 members")
	assert.Contains(t, out.String(), "Maria Rodriguez")
	assert.ErrorIs(t, a.run([]string{"community", "-message", "1"}), service.ErrNotSupported)

	out.Reset()
	require.NoError(t, a.run([]string{"resources", "-category", "services"}))
	assert.Contains(t, out.String(), "Local Special Needs Services Directory")
	assert.NotContains(t, out.String(), "Activities Guide")
	assert.ErrorIs(t, a.run([]string{"resources", "-download", "1"}), service.ErrNotSupported)
}

func TestExportImport(t *testing.T) {
	source := repository.NewMemoryStorage()
	a, _ := newTestApp(t, source)
	require.NoError(t, a.run([]string{"login"}))

	path := filepath.Join(t.TempDir(), "backups", "session.json")
	require.NoError(t, a.run([]string{"export", "-output", path}))

	b, out := newTestApp(t, repository.NewMemoryStorage())
	assert.Error(t, b.run([]string{"import"}))
	require.NoError(t, b.run([]string{"import", "-input", path}))
	assert.Contains(t, out.String(), "Imported session")
	assert.True(t, b.session.IsAuthenticated())
}

func TestShellKeepsStateBetweenCommands(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	input := strings.Join([]string{
		"login",
		"",
		"playdates -join 1",
		"frobnicate",
		"care -match 99",
		"exit",
		"whoami",
	}, "\n")

	require.NoError(t, a.shell(bufio.NewScanner(strings.NewReader(input))))

	p, err := a.community.Playdate("1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Participants)
	assert.Contains(t, out.String(), `Unknown command "frobnicate"`)
	assert.Contains(t, out.String(), "Error: care request not found")
	assert.NotContains(t, out.String(), "<sarah.johnson@example.com>")
}

func TestRunUnknownCommand(t *testing.T) {
	a, _ := newTestApp(t, repository.NewMemoryStorage())

	assert.ErrorIs(t, a.run([]string{"teleport"}), errUsage)
	assert.ErrorIs(t, a.run(nil), errUsage)
}

func TestLoginDefaultsToDemoEmail(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())

	require.NoError(t, a.run([]string{"login"}))
	out.Reset()
	require.NoError(t, a.run([]string{"whoami"}))
	assert.Equal(t, "Sarah Johnson <"+service.DemoEmail+">\n", out.String())
}

func TestExitCode(t *testing.T) {
	a, out := newTestApp(t, repository.NewMemoryStorage())
	helpErr := a.run([]string{"login", "-h"})
	require.ErrorIs(t, helpErr, flag.ErrHelp)
	assert.Contains(t, out.String(), "-email")

	tests := []struct {
		name       string
		err        error
		code       int
		wantStdout string
		wantStderr string
	}{
		{name: "success", err: nil, code: 0},
		{name: "help requested", err: helpErr, code: 0},
		{name: "unknown command", err: errUsage, code: 1, wantStdout: "Usage:"},
		{name: "command failure", err: service.ErrPlaydateNotFound, code: 1, wantStderr: "Error: playdate not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, exitCode(tt.err, &stdout, &stderr))
			if tt.wantStdout == "" {
				assert.Empty(t, stdout.String())
			} else {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}
