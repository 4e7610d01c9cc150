// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_UnmarshalLegacyRecord(t *testing.T) {
	var n Note
	err := json.Unmarshal([]byte(`{"id":"a","title":"Old","content":"<p>x</p>","timestamp":1700000000000}`), &n)
	require.NoError(t, err)

	assert.Equal(t, Note{
		ID:         "a",
		Title:      "Old",
		Content:    "<p>x</p>",
		ModifiedAt: 1700000000000,
		CreatedAt:  1700000000000,
	}, n)
}

func TestNote_UnmarshalFullRecord(t *testing.T) {
	raw := `{"id":"b","title":"T","content":"QUJD","timestamp":20,"creationTimestamp":10,"locked":true,"plaintextLength":7}`

	var n Note
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	assert.Equal(t, int64(10), n.CreatedAt)
	assert.Equal(t, int64(20), n.ModifiedAt)
	assert.True(t, n.Locked)
	assert.Equal(t, 7, n.PlaintextLength)
}

func TestNote_ExplicitZeroesAreKept(t *testing.T) {
	var n Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c","timestamp":5,"creationTimestamp":0,"locked":false}`), &n))

	assert.Equal(t, int64(0), n.CreatedAt)
	assert.False(t, n.Locked)
}

func TestNote_MarshalUsesStorageKeys(t *testing.T) {
	b, err := json.Marshal(Note{ID: "d", Title: "T", Content: "c", ModifiedAt: 2, CreatedAt: 1, PlaintextLength: 1})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"d","title":"T","content":"c","timestamp":2,"creationTimestamp":1,"locked":false,"plaintextLength":1}`, string(b))
}

func TestNote_UnmarshalRejectsWrongTypes(t *testing.T) {
	var n Note
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &n))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &n))
}

func TestNote_TimeAccessors(t *testing.T) {
	n := Note{CreatedAt: 1000, ModifiedAt: 2000}

	assert.True(t, n.Created().Equal(time.UnixMilli(1000)))
	assert.True(t, n.Modified().Equal(time.UnixMilli(2000)))
}

func TestAppBuildInfo_WriteTo(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{
			name: "release build",
			info: NewAppBuildInfo("v0.4.0", "2026-10-16", "9f2c1e7"),
			want: "Build version: v0.4.0\nBuild date: 2026-10-16\nBuild commit: 9f2c1e7\n",
		},
		{
			name: "dev build",
			info: AppBuildInfo{},
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n",
		},
		{
			name: "version only",
			info: NewAppBuildInfo("v0.4.0-rc.1", "", ""),
			want: "Build version: v0.4.0-rc.1\nBuild date: N/A\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tt.info.WriteTo(&buf)

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, int64(len(tt.want)), n)
		})
	}
}

func TestAppBuildInfo_AccessorsKeepRawValues(t *testing.T) {
	info := NewAppBuildInfo("v0.4.0", "", "9f2c1e7")

	assert.Equal(t, "v0.4.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate(), "N/A is only for printing")
	assert.Equal(t, "9f2c1e7", info.BuildCommit())
}
