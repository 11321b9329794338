//go:build linux

package notify

import (
	"reflect"
	"testing"
)

func TestNotifySendArgs(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want []string
	}{
		{
			name: "defaults to normal urgency",
			msg:  Message{Title: "Hello", Body: "World"},
			want: []string{"--app-name=remindme", "--urgency=normal", "Hello", "World"},
		},
		{
			name: "icon and sound",
			msg:  Message{Title: "Hello", Body: "World", Icon: "alarm", Sound: true, Urgency: UrgencyCritical},
			want: []string{
				"--app-name=remindme",
				"--urgency=critical",
				"--icon=alarm",
				"--hint=string:sound-name:message-new-instant",
				"Hello",
				"World",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := notifySendArgs("remindme", tc.msg)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("notifySendArgs() = %v, want %v", got, tc.want)
			}
		})
	}
}
