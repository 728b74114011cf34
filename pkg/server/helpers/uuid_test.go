/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package helpers

import (
	"testing"

	"github.com/fieldsync/fieldsync/pkg/assert"
	"github.com/pkg/errors"
)

func TestGenUUID(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 10000; i++ {
		id, err := GenUUID()
		if err != nil {
			t.Fatal(errors.Wrap(err, "generating uuid"))
		}

		if seen[id] {
			t.Fatalf("duplicate uuid generated: %s", id)
		}
		seen[id] = true

		assert.Equal(t, ValidateUUID(id), true, "generated uuid should be valid")
	}
}

func TestValidateUUID(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{
			input:    "4af22dc5-3f64-4059-a486-94ba4d40a641",
			expected: true,
		},
		{
			input:    "",
			expected: false,
		},
		{
			input:    "not-a-uuid",
			expected: false,
		},
		{
			input:    "4af22dc5-3f64-4059-a486",
			expected: false,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, ValidateUUID(tc.input), tc.expected, tc.input)
	}
}
