// Package aes evaluates AES-128 encryption over encrypted bytes. Every byte
// of state and key stays encrypted, and each stage is a fixed sequence of
// primitives that does not depend on the hidden values.
package aes

import (
	"errors"
	"fmt"

	"FHEAES"
	"FHEAES/fhe"
)

// Stage of the round pipeline
type Stage int

const (
	// StageWhitened follows the AddRoundKey with round key 0
	StageWhitened Stage = iota
	// StageMainRound covers rounds 1 to Rounds-1, with MixColumns
	StageMainRound
	// StageFinalRound is round Rounds, without MixColumns
	StageFinalRound
	// StageDone holds the output state
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageWhitened:
		return "Whitened"
	case StageMainRound:
		return "MainRound"
	case StageFinalRound:
		return "FinalRound"
	case StageDone:
		return "Done"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Observer is called when the pipeline enters a stage, with the state at the
// end of the round. It must not keep or modify the state.
type Observer[B any] func(stage Stage, round int, state *State[B])

// Config tunes an HEAES evaluator
type Config struct {
	// Workers is the number of evaluators running independent cells at the
	// same time, 0 or 1 evaluates sequentially
	Workers int
	// Debug prints round progress
	Debug bool
}

// HEAES encrypts blocks of encrypted bytes with AES-128. An HEAES may be used
// by several goroutines, they share its pool of evaluators.
type HEAES[B, C any] struct {
	logger   FHEAES.Logger
	pool     *workers[B, C]
	observer Observer[B]
}

// NewHEAES builds an AES evaluator on top of eval, with config.Workers-1
// additional shallow copies of it
func NewHEAES[B, C any](eval fhe.Evaluator[B, C], config Config) *HEAES[B, C] {
	return &HEAES[B, C]{
		logger: FHEAES.NewLogger(config.Debug),
		pool:   newWorkers(eval, config.Workers),
	}
}

// SetObserver registers a stage observer, it must be set before encrypting
func (he *HEAES[B, C]) SetObserver(observer Observer[B]) {
	he.observer = observer
}

func (he *HEAES[B, C]) observe(stage Stage, round int, s *State[B]) {
	if he.observer != nil {
		he.observer(stage, round, s)
	}
}

// EncryptBlock encrypts one block of 16 encrypted bytes under key
func (he *HEAES[B, C]) EncryptBlock(block []B, key *ExpandedKey[B]) ([]B, error) {
	if len(block) != FHEAES.BlockSize {
		return nil, fmt.Errorf("%w: got %d encrypted bytes, want %d", FHEAES.ErrInvalidBlockSize, len(block), FHEAES.BlockSize)
	}
	if key == nil {
		return nil, errors.New("nil expanded key")
	}

	var in [16]B
	copy(in[:], block)
	s := FromBlock(in)

	if err := he.addRoundKey(s, key.roundKeys[0]); err != nil {
		return nil, err
	}
	stage, round := StageWhitened, 0
	for stage != StageDone {
		he.observe(stage, round, s)
		switch stage {
		case StageWhitened, StageMainRound:
			round++
			stage = StageMainRound
			if round == Rounds {
				stage = StageFinalRound
			}
			he.logger.PrintMessages(">>> Round: ", round, " <<<")
			if err := he.round(s, key.roundKeys[round], stage == StageMainRound); err != nil {
				return nil, err
			}
		case StageFinalRound:
			stage = StageDone
		}
	}
	he.observe(StageDone, round, s)

	out := s.ToBlock()
	return out[:], nil
}

// round is SubBytes, ShiftRows, MixColumns when mix is set, AddRoundKey
func (he *HEAES[B, C]) round(s *State[B], rk RoundKey[B], mix bool) error {
	if err := he.subBytes(s); err != nil {
		return err
	}
	ShiftRows(s)
	if mix {
		if err := he.mixColumns(s); err != nil {
			return err
		}
	}
	return he.addRoundKey(s, rk)
}

func (he *HEAES[B, C]) subBytes(s *State[B]) error {
	return he.pool.run(16, func(i int, eval fhe.Evaluator[B, C]) (err error) {
		r, c := i/4, i%4
		s[r][c], err = Substitute(eval, s[r][c])
		return err
	})
}

func (he *HEAES[B, C]) mixColumns(s *State[B]) error {
	return he.pool.run(4, func(c int, eval fhe.Evaluator[B, C]) error {
		return mixColumn(eval, s, c)
	})
}

func (he *HEAES[B, C]) addRoundKey(s *State[B], rk RoundKey[B]) error {
	return he.pool.run(16, func(i int, eval fhe.Evaluator[B, C]) (err error) {
		r, c := i/4, i%4
		s[r][c], err = eval.Xor(s[r][c], rk[i])
		return err
	})
}
