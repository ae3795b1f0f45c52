package telegram

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

var ErrInvalidCallback = errors.New("invalid callback data")

// Callback action constants.
const (
	actionTopic = "topic"
	actionQuiz  = "quiz"
)

// Topic sub-actions.
const (
	topicMenu   = "menu"
	topicToggle = "toggle"
	topicStart  = "start"
)

// Quiz sub-actions. Every quiz callback carries the record index of the
// question its message shows.
const (
	quizNext   = "next"
	quizPrev   = "prev"
	quizChoose = "choose"
	quizCheck  = "check"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// sub returns the sub-action, or "" when there is none.
func (cd callbackData) sub() string {
	if len(cd.Params) == 0 {
		return ""
	}
	return cd.Params[0]
}

// intParam parses the i-th parameter after the sub-action as a non-negative int.
func (cd callbackData) intParam(i int) (int, error) {
	if i+1 >= len(cd.Params) {
		return 0, ErrInvalidCallback
	}
	n, err := strconv.Atoi(cd.Params[i+1])
	if err != nil || n < 0 {
		return 0, ErrInvalidCallback
	}
	return n, nil
}

// stringParam returns the i-th parameter after the sub-action.
func (cd callbackData) stringParam(i int) (string, error) {
	if i+1 >= len(cd.Params) {
		return "", ErrInvalidCallback
	}
	return cd.Params[i+1], nil
}

// topicKey is a short fingerprint of a topic label. Labels can exceed the
// 64-byte callback limit, so toggles carry an index plus this key.
func topicKey(topic string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(topic))
	return fmt.Sprintf("%08x", h.Sum32())
}

// buildTopicMenuCallback builds callback data for opening the topic selector.
func buildTopicMenuCallback() string {
	return callbackData{
		Action: actionTopic,
		Params: []string{topicMenu},
	}.encode()
}

// buildTopicToggleCallback builds callback data for toggling topic, found at index.
func buildTopicToggleCallback(index int, topic string) string {
	return callbackData{
		Action: actionTopic,
		Params: []string{topicToggle, strconv.Itoa(index), topicKey(topic)},
	}.encode()
}

// buildTopicStartCallback builds callback data for starting the quiz with the current topics.
func buildTopicStartCallback() string {
	return callbackData{
		Action: actionTopic,
		Params: []string{topicStart},
	}.encode()
}

// buildQuizNextCallback builds callback data for moving past the question with recordIndex.
func buildQuizNextCallback(recordIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, strconv.Itoa(recordIndex)},
	}.encode()
}

// buildQuizPrevCallback builds callback data for moving before the question with recordIndex.
func buildQuizPrevCallback(recordIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizPrev, strconv.Itoa(recordIndex)},
	}.encode()
}

// buildQuizChooseCallback builds callback data for choosing an option of a question.
func buildQuizChooseCallback(recordIndex, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizChoose, strconv.Itoa(recordIndex), strconv.Itoa(option)},
	}.encode()
}

// buildQuizCheckCallback builds callback data for checking the answer of a question.
func buildQuizCheckCallback(recordIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizCheck, strconv.Itoa(recordIndex)},
	}.encode()
}
