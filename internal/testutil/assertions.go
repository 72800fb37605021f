package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertResolvedBefore checks that dependency appears ahead of dependent in
// the resolved order of a successful run.
func AssertResolvedBefore(t *testing.T, result *HarnessResult, dependency, dependent string) {
	t.Helper()
	require.NoError(t, result.Err)
	require.NotNil(t, result.Result, "run did not produce a decoded result")

	names := result.Result.OrderNames()
	depIdx := slices.Index(names, dependency)
	dependentIdx := slices.Index(names, dependent)
	require.NotEqual(t, -1, depIdx, "%q missing from order %v", dependency, names)
	require.NotEqual(t, -1, dependentIdx, "%q missing from order %v", dependent, names)
	require.Less(t, depIdx, dependentIdx, "expected %q before %q in %v", dependency, dependent, names)
}

// AssertTopological checks every entry of a successful run against the
// dependencies it reports.
func AssertTopological(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NoError(t, result.Err)
	require.NotNil(t, result.Result, "run did not produce a decoded result")

	for _, entry := range result.Result.Order {
		for _, dep := range entry.DependsOn {
			AssertResolvedBefore(t, result, dep, entry.Name)
		}
	}
}
