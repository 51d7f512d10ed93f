package prompt

import (
	"context"
	"fmt"
)

// Script replays queued answers in order, one per prompt, so flows built on
// Driver run without a terminal. Exhausting the script fails the prompt.
type Script struct {
	Answers []any
	Infos   []string

	next int
}

// NewScript builds a scripted driver from the answers in prompt order.
func NewScript(answers ...any) *Script {
	return &Script{Answers: answers}
}

func (s *Script) pop() (any, error) {
	if s.next >= len(s.Answers) {
		return nil, fmt.Errorf("prompt: script exhausted after %d answers", len(s.Answers))
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

// Input returns the next scripted string answer.
func (s *Script) Input(ctx context.Context, cfg InputConfig) (string, error) {
	answer, err := s.pop()
	if err != nil {
		return "", err
	}
	value, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("prompt: script answer %d is %T, want string", s.next-1, answer)
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// Confirm returns the next scripted bool answer.
func (s *Script) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	answer, err := s.pop()
	if err != nil {
		return false, err
	}
	value, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("prompt: script answer %d is %T, want bool", s.next-1, answer)
	}
	return value, nil
}

// Select returns the next scripted index answer.
func (s *Script) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	answer, err := s.pop()
	if err != nil {
		return 0, err
	}
	value, ok := answer.(int)
	if !ok {
		return 0, fmt.Errorf("prompt: script answer %d is %T, want int", s.next-1, answer)
	}
	return value, nil
}

// MultiSelect returns the next scripted index slice answer.
func (s *Script) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	answer, err := s.pop()
	if err != nil {
		return nil, err
	}
	value, ok := answer.([]int)
	if !ok {
		return nil, fmt.Errorf("prompt: script answer %d is %T, want []int", s.next-1, answer)
	}
	return value, nil
}

// TextArea returns the next scripted string answer.
func (s *Script) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	answer, err := s.pop()
	if err != nil {
		return "", err
	}
	value, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("prompt: script answer %d is %T, want string", s.next-1, answer)
	}
	return value, nil
}

// Info records the message instead of printing it.
func (s *Script) Info(ctx context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return nil
}
