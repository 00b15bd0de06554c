package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADDRESSBOOK_ENV", "production")
	t.Setenv("ADDRESSBOOK_SERVICE", "addressbook-test")
}

func TestCLI_ParsesValidateFlags(t *testing.T) {
	quietEnv(t)
	var cli CLI
	var buf bytes.Buffer
	k, err := kong.New(&cli,
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) { panic(errExitCalled) }),
	)
	require.NoError(t, err)

	kctx, err := k.Parse([]string{
		"validate",
		"--first-name=Ankit", "--last-name=Sharma",
		"--address=78 Arera Hills", "--city=Bhopal", "--state=MP",
		"--zip=461331", "--phone=7000000001", "--email=ankit@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "validate", kctx.Command())
	assert.Equal(t, "Ankit", cli.Validate.FirstName)
	assert.Equal(t, "461331", cli.Validate.Zip)
	assert.Equal(t, "addressbook-test", cli.Service)
}

func TestCLI_DemoIsDefault(t *testing.T) {
	quietEnv(t)
	var cli CLI
	k, err := kong.New(&cli, kong.Exit(func(int) { panic(errExitCalled) }))
	require.NoError(t, err)

	kctx, err := k.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "demo", kctx.Command())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Env: "development", Service: "svc"}.Validate())
	assert.Error(t, Config{Env: "staging", Service: "svc"}.Validate())
	assert.ErrorIs(t, Config{Env: "production", Service: "  "}.Validate(), errEmptyService)
}

func TestRun_Demo(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"demo"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	for _, line := range []string{
		"Contact added successfully: Deepanshu Malviya",
		"Contact added successfully: Ankit Sharma",
		"Duplicate contact: Deepanshu Malviya",
		"Invalid contact Rahul Gupta:",
		"Found: Name: Shubham Verma",
		"Contact updated: Deepanshu Malviya",
		"Contact not found: Nobody Here",
		"Total contacts: 3",
		"Contact deleted: Shubham Verma",
		"Contact not found: Shubham Verma",
		"Recorded 6 change events",
		"  contact.edited Deepanshu Malviya",
		"  addressbook.sorted zip",
	} {
		assert.Contains(t, out, line)
	}

	// The edit moves Deepanshu to 452002, between Shubham and Ankit.
	sorted := out[strings.Index(out, "Sorted by zip:"):]
	assert.Less(t, strings.Index(sorted, "Shubham Verma"), strings.Index(sorted, "Deepanshu Malviya"))
	assert.Less(t, strings.Index(sorted, "Deepanshu Malviya"), strings.Index(sorted, "Ankit Sharma"))
}

func TestRun_DemoJSON(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"demo", "--json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, `"reason":"conflict"`)
	assert.Contains(t, out, `"code":"NotFound"`)
	assert.Contains(t, out, `"reason":"validation_failed"`)
	assert.NotContains(t, out, "Duplicate contact:")
}

func TestRun_ValidateOK(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"validate",
		"--first-name=Ankit", "--last-name=Sharma",
		"--address=78 Arera Hills", "--city=Bhopal", "--state=MP",
		"--zip=461331", "--phone=7000000001", "--email=ankit@example.com",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"firstName":"Ankit"`)
}

func TestRun_ValidateReportsViolations(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"validate",
		"--first-name=ankit", "--last-name=Sharma",
		"--address=78 Arera Hills", "--city=Bhopal", "--state=MP",
		"--zip=12345", "--phone=7000000001", "--email=ankit@example.com",
	}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), `"reason":"validation_failed"`)
	assert.Contains(t, stdout.String(), `"domain":"addressbook"`)
	assert.Contains(t, stderr.String(), errInvalidContact.Error())
}

func TestRun_BadConfig(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--env=staging", "demo"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown environment")
}
