package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shotbook/test/integration/harness"
)

func TestStats_Empty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stats")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No shots in range.")
}

func TestStats_OrderedBySessionCount(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "shots", "add", "2024-05-01", "--master", "gm", "a:Alice", "b:Bob"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "shots", "add", "2024-05-08", "--master", "gm", "b:Bob"))

	result := harness.RunCommand(t, env, "stats", "--from", "2024-05-01", "--to", "2024-05-31")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Attendance 2024-05-01 to 2024-05-31")
	harness.AssertStdoutOrder(t, result, "Bob", "Alice")
}

func TestStats_JSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "shots", "add", "2024-05-01", "--master", "gm", "a:Alice"))

	result := harness.RunCommand(t, env, "stats", "--from", "2024-05-01", "--to", "2024-05-01", "--format", "json")
	harness.AssertSuccess(t, result)

	var out struct {
		From string
		Rows []struct {
			LastDate      string
			ParticipantID string
			SessionCount  int
		}
		To string
	}
	harness.AssertValidJSON(t, result, &out)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "a", out.Rows[0].ParticipantID)
	assert.Equal(t, 1, out.Rows[0].SessionCount)
	assert.Equal(t, "2024-05-01", out.Rows[0].LastDate)
}

func TestStats_InvalidRange(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stats", "--from", "2024-06-01", "--to", "2024-05-01")

	harness.AssertFailure(t, result)
}
