package telegram

import (
	"errors"
	"testing"
)

// TestCallbackRoundTrip verifies builders produce data decodeCallback understands.
func TestCallbackRoundTrip(t *testing.T) {
	cases := []struct {
		data   string
		action string
		sub    string
		ints   []int
	}{
		{data: buildTopicMenuCallback(), action: actionTopic, sub: topicMenu},
		{data: buildTopicToggleCallback(3, "Human Physiology and Reproductive Health in Humans"), action: actionTopic, sub: topicToggle, ints: []int{3}},
		{data: buildTopicStartCallback(), action: actionTopic, sub: topicStart},
		{data: buildQuizNextCallback(7), action: actionQuiz, sub: quizNext, ints: []int{7}},
		{data: buildQuizPrevCallback(1200), action: actionQuiz, sub: quizPrev, ints: []int{1200}},
		{data: buildQuizChooseCallback(2, 1), action: actionQuiz, sub: quizChoose, ints: []int{2, 1}},
		{data: buildQuizCheckCallback(0), action: actionQuiz, sub: quizCheck, ints: []int{0}},
	}

	for _, tc := range cases {
		if len(tc.data) > 64 {
			t.Fatalf("callback data %q exceeds Telegram limit", tc.data)
		}
		cd := decodeCallback(tc.data)
		if cd.Action != tc.action || cd.sub() != tc.sub {
			t.Fatalf("%q: expected %s/%s, got %s/%s", tc.data, tc.action, tc.sub, cd.Action, cd.sub())
		}
		for i, want := range tc.ints {
			got, err := cd.intParam(i)
			if err != nil || got != want {
				t.Fatalf("%q: param %d expected %d, got %d (%v)", tc.data, i, want, got, err)
			}
		}
	}
}

// TestCallbackIntParamRejectsBadInput verifies missing and malformed params.
func TestCallbackIntParamRejectsBadInput(t *testing.T) {
	for _, data := range []string{"quiz:next", "quiz:next:x", "quiz:next:-1"} {
		if _, err := decodeCallback(data).intParam(0); !errors.Is(err, ErrInvalidCallback) {
			t.Fatalf("%q: expected ErrInvalidCallback, got %v", data, err)
		}
	}
	if sub := decodeCallback("quiz").sub(); sub != "" {
		t.Fatalf("expected empty sub-action, got %q", sub)
	}
}

// TestTopicKeyIdentifiesTopic verifies toggle data names the topic it was built for.
func TestTopicKeyIdentifiesTopic(t *testing.T) {
	data := decodeCallback(buildTopicToggleCallback(0, "Genetics"))
	key, err := data.stringParam(1)
	if err != nil {
		t.Fatalf("missing topic key: %v", err)
	}
	if key != topicKey("Genetics") {
		t.Fatalf("expected key of Genetics, got %q", key)
	}
	if key == topicKey("Cell Biology") {
		t.Fatalf("expected different topics to have different keys")
	}
}
