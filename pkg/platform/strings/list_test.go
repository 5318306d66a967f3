package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only whitespace and commas",
			input:    " , ,, ",
			expected: nil,
		},
		{
			name:     "single broker",
			input:    "kafka-1:9092",
			expected: []string{"kafka-1:9092"},
		},
		{
			name:     "trims around entries",
			input:    " kafka-1:9092 ,  kafka-2:9092",
			expected: []string{"kafka-1:9092", "kafka-2:9092"},
		},
		{
			name:     "drops repeats keeping first occurrence",
			input:    "kafka-1:9092,kafka-2:9092,kafka-1:9092",
			expected: []string{"kafka-1:9092", "kafka-2:9092"},
		},
		{
			name:     "trailing comma",
			input:    "kafka-1:9092,",
			expected: []string{"kafka-1:9092"},
		},
		{
			name:     "entries are case sensitive",
			input:    "Kafka-1:9092,kafka-1:9092",
			expected: []string{"Kafka-1:9092", "kafka-1:9092"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
