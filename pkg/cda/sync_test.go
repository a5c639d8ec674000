package cda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

func TestSyncParams_ResolveToken(t *testing.T) {
	t.Parallel()

	snapshot := &cda.SynchronizedSpace{NextSyncToken: "snapshot-token"}

	tests := []struct {
		name     string
		opts     []cda.SyncOption
		expected string
	}{
		{
			name:     "no options means initial sync",
			opts:     nil,
			expected: "",
		},
		{
			name:     "explicit token",
			opts:     []cda.SyncOption{cda.WithSyncToken("tok123")},
			expected: "tok123",
		},
		{
			name:     "snapshot token",
			opts:     []cda.SyncOption{cda.WithSyncedSpace(snapshot)},
			expected: "snapshot-token",
		},
		{
			name: "token takes precedence over snapshot",
			opts: []cda.SyncOption{
				cda.WithSyncedSpace(snapshot),
				cda.WithSyncToken("tok123"),
			},
			expected: "tok123",
		},
		{
			name: "precedence holds regardless of option order",
			opts: []cda.SyncOption{
				cda.WithSyncToken("tok123"),
				cda.WithSyncedSpace(snapshot),
			},
			expected: "tok123",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			params := cda.NewSyncParams(testCase.opts...)
			assert.Equal(t, testCase.expected, params.ResolveToken())
		})
	}
}
