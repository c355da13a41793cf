package aes

// State is the 4x4 cipher state, State[r][c] holds AES position (r, c)
type State[B any] [4][4]B

// FromBlock fills the state column by column, offset c*4+r goes to [r][c]
func FromBlock[B any](block [16]B) *State[B] {
	s := new(State[B])
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r][c] = block[c*4+r]
		}
	}
	return s
}

// ToBlock is the inverse of FromBlock
func (s *State[B]) ToBlock() (block [16]B) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			block[c*4+r] = s[r][c]
		}
	}
	return block
}
