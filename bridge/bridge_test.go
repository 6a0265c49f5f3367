package bridge

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/pong-royale/intent"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type delivery struct {
	player int
	in     intent.Intent
}

type recorder struct {
	got []delivery
}

func (r *recorder) ApplyIntent(player int, in intent.Intent) {
	r.got = append(r.got, delivery{player, in})
}

func intPtr(v int) *int { return &v }

func TestMessageDecode(t *testing.T) {
	cases := []struct {
		name   string
		msg    Message
		player int
		want   intent.Intent
	}{
		{"tilt up", Message{PlayerID: intPtr(2), ControllerAction: "tilt", RawDirection: "up"}, 2, intent.MoveTowardStart},
		{"tilt down", Message{PlayerID: intPtr(1), ControllerAction: "tilt", RawDirection: "down"}, 1, intent.MoveTowardEnd},
		{"tilt stop", Message{PlayerID: intPtr(0), ControllerAction: "tilt", RawDirection: "stop"}, 0, intent.None},
		{"button", Message{PlayerID: intPtr(3), ControllerAction: "button"}, 3, intent.Act},
		{"game action", Message{PlayerID: intPtr(1), GameAction: "move_down"}, 1, intent.MoveTowardEnd},
		{"bare action", Message{Player: intPtr(0), Action: "left"}, 0, intent.MoveTowardStart},
		{"restart", Message{Player: intPtr(0), Action: "restart"}, 0, intent.Restart},
	}
	for _, tc := range cases {
		player, in, err := tc.msg.Decode()
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if player != tc.player || in != tc.want {
			t.Fatalf("%s: got (%d, %v), want (%d, %v)", tc.name, player, in, tc.player, tc.want)
		}
	}

	if _, _, err := (Message{Action: "up"}).Decode(); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("missing player: err = %v", err)
	}
	if _, _, err := (Message{Player: intPtr(4), Action: "up"}).Decode(); err == nil {
		t.Fatal("out of range player accepted")
	}
	if _, _, err := (Message{Player: intPtr(0), Action: "fly"}).Decode(); !errors.Is(err, intent.ErrUnknownAction) {
		t.Fatalf("unknown action: err = %v", err)
	}
}

func TestControllerSocket(t *testing.T) {
	mb := intent.NewMailbox()
	ts := httptest.NewServer(New("", mb).Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/controller"
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	send := func(v any) Ack {
		t.Helper()
		if err := wsjson.Write(ctx, c, v); err != nil {
			t.Fatalf("write: %v", err)
		}
		var ack Ack
		if err := wsjson.Read(ctx, c, &ack); err != nil {
			t.Fatalf("read ack: %v", err)
		}
		return ack
	}

	if ack := send(map[string]any{"player_id": 1, "controller_action": "tilt", "raw_direction": "down"}); !ack.OK {
		t.Fatalf("tilt rejected: %+v", ack)
	}
	if ack := send(map[string]any{"player_id": 1, "controller_action": "button"}); !ack.OK {
		t.Fatalf("button rejected: %+v", ack)
	}
	if ack := send(map[string]any{"player_id": 9, "action": "up"}); ack.OK {
		t.Fatal("bad player accepted")
	}

	if err := c.Write(ctx, websocket.MessageText, []byte("not json")); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	var ack Ack
	if err := wsjson.Read(ctx, c, &ack); err != nil {
		t.Fatalf("connection should survive a malformed event: %v", err)
	}
	if ack.OK {
		t.Fatal("malformed event acknowledged")
	}

	r := &recorder{}
	mb.Deliver(r)
	want := []delivery{{1, intent.MoveTowardEnd}, {1, intent.Act}}
	if len(r.got) != len(want) || r.got[0] != want[0] || r.got[1] != want[1] {
		t.Fatalf("delivered %v, want %v", r.got, want)
	}
}
