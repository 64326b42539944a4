package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_VisibleTo(t *testing.T) {
	cases := []struct {
		name                string
		deletedFromSender   bool
		deletedFromReceiver bool
		viewer              int64
		want                bool
	}{
		{name: "sender sees own message", viewer: 1, want: true},
		{name: "sender deleted own copy", deletedFromSender: true, viewer: 1, want: false},
		{name: "sender unaffected by receiver delete", deletedFromReceiver: true, viewer: 1, want: true},
		{name: "receiver sees message", viewer: 2, want: true},
		{name: "receiver deleted copy", deletedFromReceiver: true, viewer: 2, want: false},
		{name: "receiver unaffected by sender delete", deletedFromSender: true, viewer: 2, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Message{
				UserID:              1,
				DeletedFromSender:   tc.deletedFromSender,
				DeletedFromReceiver: tc.deletedFromReceiver,
			}
			assert.Equal(t, tc.want, m.VisibleTo(tc.viewer))
		})
	}
}
