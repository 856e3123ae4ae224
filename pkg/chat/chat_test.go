package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_Keywords(t *testing.T) {
	r := NewResponderWithPicker(func(int) int { return 0 })

	tests := []struct {
		msg  string
		want string
	}{
		{"Which Goa beach is best?", "Goa has amazing beaches!"},
		{"KERALA on a budget", "A Kerala trip can cost"},
		{"what time to visit rajasthan", "Best time to visit Rajasthan"},
		{"how is the weather in march", "Best time to visit Rajasthan"},
		{"trip with family", "For family trips"},
		{"something cheap please", "For budget travel in India"},
		{"where to eat", "Indian cuisine varies by region!"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(r.Reply(tt.msg), tt.want), "reply to %q", tt.msg)
		})
	}
}

func TestReply_Fallback(t *testing.T) {
	var asked int
	r := NewResponderWithPicker(func(n int) int {
		asked = n
		return 2
	})

	assert.Equal(t, Fallbacks[2], r.Reply("hello there"))
	assert.Equal(t, len(Fallbacks), asked)
}

func TestReply_SeededIsRepeatable(t *testing.T) {
	a, b := NewResponder(7), NewResponder(7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Reply("hi"), b.Reply("hi"))
	}
	assert.Contains(t, Fallbacks, a.Reply("hi"))
}
