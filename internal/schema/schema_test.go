package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstructionsDeterministic(t *testing.T) {
	first := TeamModules.FormatInstructions()
	second := TeamModules.FormatInstructions()
	assert.Equal(t, first, second)
}

func TestFormatInstructionsListsEveryField(t *testing.T) {
	for _, s := range All {
		t.Run(s.Name, func(t *testing.T) {
			text := s.FormatInstructions()
			for _, f := range s.Fields {
				assert.Contains(t, text, `"`+f.Name+`"`, "field %s missing from instructions", f.Name)
				assert.Contains(t, text, f.Description)
			}
			assert.Contains(t, text, "Return ONLY the JSON object")
		})
	}
}

func TestFormatInstructionsCommaPlacement(t *testing.T) {
	text := Feedback.FormatInstructions()
	lines := strings.Split(text, "\n")

	var fieldLines []string
	for _, l := range lines {
		if strings.Contains(l, "//") {
			fieldLines = append(fieldLines, l)
		}
	}
	require.Len(t, fieldLines, len(Feedback.Fields))

	for i, l := range fieldLines {
		before := strings.SplitN(l, "//", 2)[0]
		if i < len(fieldLines)-1 {
			assert.Contains(t, before, ",", "line %d should carry a comma", i)
		} else {
			assert.NotContains(t, before, ",", "last field line should not carry a comma")
		}
	}
}

func TestRegistryShapes(t *testing.T) {
	assert.Len(t, TaskAssignment.Fields, 8, "four task/detail pairs")
	assert.Len(t, TeamModules.Fields, 9, "three title/description/objectives triples")
	assert.Len(t, Feedback.Fields, 7)

	ratings := 0
	for _, f := range Feedback.Fields {
		if f.Type == Integer {
			ratings++
		}
	}
	assert.Equal(t, 4, ratings, "feedback carries four integer ratings")
}

func TestFieldNames(t *testing.T) {
	names := TaskAssignment.FieldNames()
	require.Len(t, names, 8)
	assert.Equal(t, "task_1", names[0])
	assert.Equal(t, "detail_4", names[7])
}
