package wiird

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
)

// Codes decodes a raw code stream (with the gct header already removed)
// into a block tree.
//
// Malformed streams never fail the whole decode: stream anomalies are
// logged and the codes decoded so far are returned.
func Codes(data []byte) Block {
	result := processBlock(data, false)
	if !result.finished {
		log.Error().Msg("a block in the code list did not terminate, or a termination occured without a block")
		return Block{}
	}
	return result.block
}

// blockResult is the outcome of one processBlock call. A nested block that
// was closed by an E0/E2 terminator reports finished == false along with
// how many conditionals the terminator pops; a plain "return Block" cannot
// express those multi-pops.
type blockResult struct {
	finished bool
	block    Block

	// The remaining fields are only set when finished is false.
	count                   EndIfCount
	bytesProcessed          int
	resetBaseAddressHigh    uint16
	resetPointerAddressHigh uint16
}

func finishedBlock(codes []Code) blockResult {
	return blockResult{finished: true, block: Block{Codes: codes}}
}

func processBlock(data []byte, isNested bool) blockResult {
	var codes []Code
	offset := 0
	for offset < len(data) {
		if offset+8 > len(data) {
			log.Error().Int("offset", offset).Int("size", len(data)).
				Msg("code list truncated mid-code")
			return finishedBlock(codes)
		}

		// End of program.
		if data[offset] == 0xF0 {
			return finishedBlock(codes)
		}

		// Not every code type uses these, but it is safe to extract them
		// up front for the ones that do.
		useBaseAddress := data[offset]&0b00010000 == 0
		address := binary.BigEndian.Uint32(data[offset:]) & 0x1FFFFFF

		code := data[offset] & 0b11101110
		switch code {
		case 0x00:
			codes = append(codes, WriteAndFill8{
				UseBaseAddress: useBaseAddress,
				Address:        address,
				Value:          data[offset+7],
				Length:         uint32(binary.BigEndian.Uint16(data[offset+4:])) + 1,
			})
			offset += 8
		case 0x02:
			codes = append(codes, WriteAndFill16{
				UseBaseAddress: useBaseAddress,
				Address:        address,
				Value:          binary.BigEndian.Uint16(data[offset+6:]),
				Length:         uint32(binary.BigEndian.Uint16(data[offset+4:])) + 1,
			})
			offset += 8
		case 0x04:
			codes = append(codes, WriteAndFill32{
				UseBaseAddress: useBaseAddress,
				Address:        address,
				Value:          binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x06:
			count := int(binary.BigEndian.Uint32(data[offset+4:]))
			if offset+8+count > len(data) {
				log.Error().Int("offset", offset).Int("count", count).
					Msg("string write payload extends beyond the code list")
				return finishedBlock(codes)
			}
			values := make([]byte, count)
			copy(values, data[offset+8:])
			codes = append(codes, StringWrite{
				UseBaseAddress: useBaseAddress,
				Address:        address,
				Values:         values,
			})
			offset += 8 + count
			// The payload is padded to an 8 byte boundary.
			if count%8 != 0 {
				offset += 8 - count%8
			}
		case 0x08:
			if offset+16 > len(data) {
				log.Error().Int("offset", offset).Msg("serial write truncated")
				return finishedBlock(codes)
			}
			codes = append(codes, SerialWrite{
				UseBaseAddress:   useBaseAddress,
				Address:          address,
				InitialValue:     binary.BigEndian.Uint32(data[offset+4:]),
				ValueSize:        data[offset+8],
				Count:            binary.BigEndian.Uint16(data[offset+8:])&0x0FFF + 1,
				AddressIncrement: binary.BigEndian.Uint16(data[offset+10:]),
				ValueIncrement:   binary.BigEndian.Uint32(data[offset+12:]),
			})
			offset += 16
		case 0x20, 0x22, 0x24, 0x26, 0x28, 0x2A, 0x2C, 0x2E:
			value := binary.BigEndian.Uint32(data[offset+4:])
			lhsMask := binary.BigEndian.Uint16(data[offset+4:])
			rhsValue := binary.BigEndian.Uint16(data[offset+6:])

			insertEndif := address&1 != 0
			address &= 0xFFFFFFFE

			var test IfTest
			switch code {
			case 0x20:
				test = IsEqual{UseBaseAddress: useBaseAddress, Address: address, Value: value}
			case 0x22:
				test = IsNotEqual{UseBaseAddress: useBaseAddress, Address: address, Value: value}
			case 0x24:
				test = IsGreaterThan{UseBaseAddress: useBaseAddress, Address: address, Value: value}
			case 0x26:
				test = IsLessThan{UseBaseAddress: useBaseAddress, Address: address, Value: value}
			case 0x28:
				test = IsEqualMask{UseBaseAddress: useBaseAddress, Address: address, LHSMask: lhsMask, RHSValue: rhsValue}
			case 0x2A:
				test = IsNotEqualMask{UseBaseAddress: useBaseAddress, Address: address, LHSMask: lhsMask, RHSValue: rhsValue}
			case 0x2C:
				test = IsGreaterThanMask{UseBaseAddress: useBaseAddress, Address: address, LHSMask: lhsMask, RHSValue: rhsValue}
			case 0x2E:
				test = IsLessThanMask{UseBaseAddress: useBaseAddress, Address: address, LHSMask: lhsMask, RHSValue: rhsValue}
			}
			offset += 8

			sub := processBlock(data[offset:], true)
			if sub.finished {
				// Without a terminator there is no way to know how many
				// bytes the branch was meant to cover.
				log.Error().Uint8("opcode", code).Msg("if statement did not terminate")
				return finishedBlock(codes)
			}
			offset += sub.bytesProcessed
			codes = append(codes, IfStatement{
				Test:                    test,
				ThenBranch:              sub.block,
				ElseBranch:              nil,
				InsertEndif:             insertEndif,
				ResetBaseAddressHigh:    sub.resetBaseAddressHigh,
				ResetPointerAddressHigh: sub.resetPointerAddressHigh,
			})

			count := sub.count
			if !count.Infinite {
				count.Count--
			}
			multiEndif := count.Infinite || count.Count > 0

			if multiEndif && isNested {
				return blockResult{
					finished:                false,
					block:                   Block{Codes: codes},
					count:                   count,
					bytesProcessed:          offset,
					resetBaseAddressHigh:    sub.resetBaseAddressHigh,
					resetPointerAddressHigh: sub.resetPointerAddressHigh,
				}
			}
			codes = append(codes, ResetAddressHigh{
				ResetBaseAddressHigh:    sub.resetBaseAddressHigh,
				ResetPointerAddressHigh: sub.resetPointerAddressHigh,
			})
		case 0x40:
			addResult := data[offset+1]&0b00010000 != 0
			addMemAddress := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, LoadBaseAddress{
				AddResult:     addResult,
				AddMemAddress: addAddress(addMemAddress, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				MemAddress:    binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x42:
			addResult := data[offset+1]&0b00010000 != 0
			add := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, SetBaseAddress{
				AddResult:     addResult,
				Add:           addAddress(add, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				Value:         binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x44:
			addMemAddress := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, StoreBaseAddress{
				AddMemAddress: addAddress(addMemAddress, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				MemAddress:    binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x46:
			codes = append(codes, SetBaseAddressToCodeLocation{
				AddressOffset: int16(binary.BigEndian.Uint16(data[offset+2:])),
			})
			offset += 8
		case 0x48:
			addResult := data[offset+1]&0b00010000 != 0
			addMemAddress := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, LoadPointerAddress{
				AddResult:     addResult,
				AddMemAddress: addAddress(addMemAddress, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				MemAddress:    binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x4A:
			addResult := data[offset+1]&0b00010000 != 0
			add := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, SetPointerAddress{
				AddResult:     addResult,
				Add:           addAddress(add, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				Value:         binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x4C:
			addMemAddress := data[offset+1]&1 != 0
			hasRegister := data[offset+2]&0b00010000 != 0
			register := data[offset+3] & 0xF
			codes = append(codes, StorePointerAddress{
				AddMemAddress: addAddress(addMemAddress, useBaseAddress),
				GeckoRegister: optionalRegister(hasRegister, register),
				MemAddress:    binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x4E:
			codes = append(codes, SetPointerAddressToCodeLocation{
				AddressOffset: int16(binary.BigEndian.Uint16(data[offset+2:])),
			})
			offset += 8
		case 0x60:
			codes = append(codes, SetRepeat{
				Count:   binary.BigEndian.Uint16(data[offset+2:]),
				BlockID: data[offset+7],
			})
			offset += 8
		case 0x62:
			codes = append(codes, ExecuteRepeat{BlockID: data[offset+7] & 0xF})
			offset += 8
		case 0x64:
			flag, ok := jumpFlag(data[offset+1])
			if !ok {
				log.Error().Uint8("flag", data[offset+1]).Msg("unknown jump flag in return")
				return finishedBlock(codes)
			}
			codes = append(codes, Return{Flag: flag, BlockID: data[offset+7] & 0xF})
			offset += 8
		case 0x66:
			flag, ok := jumpFlag(data[offset+1])
			if !ok {
				log.Error().Uint8("flag", data[offset+1]).Msg("unknown jump flag in goto")
				return finishedBlock(codes)
			}
			offsetLines := int16(binary.BigEndian.Uint16(data[offset+2:]))
			offset += 8

			// An unconditional forward goto declares an embedded data
			// section: skip over it rather than decoding it as codes.
			// TODO: a goto jumping backwards into the skipped lines later
			// on is not handled.
			if flag == JumpAlways && offsetLines >= 0 {
				log.Debug().Int16("offset_lines", offsetLines).
					Msg("skipping data section declared by unconditional goto")
				offset += 8 * int(offsetLines)
			} else {
				if flag == JumpAlways {
					log.Debug().Int16("offset_lines", offsetLines).
						Msg("emitting backwards unconditional goto")
				}
				codes = append(codes, Goto{Flag: flag, OffsetLines: offsetLines})
			}
		case 0x68:
			flag, ok := jumpFlag(data[offset+1])
			if !ok {
				log.Error().Uint8("flag", data[offset+1]).Msg("unknown jump flag in subroutine")
				return finishedBlock(codes)
			}
			codes = append(codes, Subroutine{
				Flag:        flag,
				OffsetLines: int16(binary.BigEndian.Uint16(data[offset+2:])),
				BlockID:     data[offset+7] & 0xF,
			})
			offset += 8
		case 0x80:
			addResult := data[offset+1]&0b00010000 != 0
			add := data[offset+1]&1 != 0
			codes = append(codes, SetGeckoRegister{
				AddResult: addResult,
				Add:       addAddress(add, useBaseAddress),
				Register:  data[offset+3] & 0xF,
				Value:     binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x82:
			codes = append(codes, LoadGeckoRegister{
				Register:   data[offset+3] & 0xF,
				MemAddress: binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x84:
			codes = append(codes, StoreGeckoRegister{
				Register:   data[offset+3] & 0xF,
				MemAddress: binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x86:
			codes = append(codes, OperationGeckoRegisterDirectValue{
				Operation:    GeckoOperation(data[offset+1] & 0xF0),
				LoadRegister: data[offset+1]&0b00000001 != 0,
				LoadValue:    data[offset+1]&0b00000010 != 0,
				Register:     data[offset+3] & 0x0F,
				Value:        binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x88:
			codes = append(codes, OperationGeckoRegister{
				Operation:     GeckoOperation(data[offset+1] & 0xF0),
				LoadRegister1: data[offset+1]&0b00000001 != 0,
				LoadRegister2: data[offset+1]&0b00000010 != 0,
				Register1:     data[offset+3] & 0x0F,
				Register2:     data[offset+7] & 0x0F,
			})
			offset += 8
		case 0x8A:
			destRegister := data[offset+3] & 0x0F
			codes = append(codes, MemoryCopy1{
				UseBaseAddress: useBaseAddress,
				Count:          binary.BigEndian.Uint16(data[offset+1:]),
				SourceRegister: data[offset+3] & 0xF0,
				DestRegister:   optionalRegister(destRegister != 0x0F, destRegister),
				DestOffset:     binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0x8C:
			sourceRegister := data[offset+3] & 0xF0
			codes = append(codes, MemoryCopy2{
				UseBaseAddress: useBaseAddress,
				Count:          binary.BigEndian.Uint16(data[offset+1:]),
				SourceRegister: optionalRegister(sourceRegister != 0xF0, sourceRegister),
				DestRegister:   data[offset+3] & 0x0F,
				SourceOffset:   binary.BigEndian.Uint32(data[offset+4:]),
			})
			offset += 8
		case 0xC0:
			count := int(binary.BigEndian.Uint32(data[offset+4:]))
			if offset+8+count*8 > len(data) {
				log.Error().Int("offset", offset).Int("count", count).
					Msg("PPC instruction payload extends beyond the code list")
				return finishedBlock(codes)
			}
			instructionData := make([]byte, count*8)
			copy(instructionData, data[offset+8:])
			codes = append(codes, ExecutePPC{InstructionData: instructionData})
			offset += 8 + count*8
		case 0xC2:
			count := int(binary.BigEndian.Uint32(data[offset+4:]))
			if offset+8+count*8 > len(data) {
				log.Error().Int("offset", offset).Int("count", count).
					Msg("PPC instruction payload extends beyond the code list")
				return finishedBlock(codes)
			}
			instructionData := make([]byte, count*8)
			copy(instructionData, data[offset+8:])
			codes = append(codes, InsertPPC{
				UseBaseAddress:  useBaseAddress,
				Address:         address,
				InstructionData: instructionData,
			})
			offset += 8 + count*8
		case 0xE0:
			resetBaseAddressHigh := binary.BigEndian.Uint16(data[offset+4:])
			resetPointerAddressHigh := binary.BigEndian.Uint16(data[offset+6:])
			offset += 8

			if isNested {
				return blockResult{
					finished:                false,
					block:                   Block{Codes: codes},
					count:                   EndIfCount{Infinite: true},
					bytesProcessed:          offset,
					resetBaseAddressHigh:    resetBaseAddressHigh,
					resetPointerAddressHigh: resetPointerAddressHigh,
				}
			}
			codes = append(codes, ResetAddressHigh{
				ResetBaseAddressHigh:    resetBaseAddressHigh,
				ResetPointerAddressHigh: resetPointerAddressHigh,
			})
		case 0xE2:
			elseBranch := data[offset+1]&0x10 != 0
			count := data[offset+3]
			resetBaseAddressHigh := binary.BigEndian.Uint16(data[offset+4:])
			resetPointerAddressHigh := binary.BigEndian.Uint16(data[offset+6:])

			if elseBranch {
				codes = append(codes, Else{
					EndifCount:              count,
					ResetBaseAddressHigh:    resetBaseAddressHigh,
					ResetPointerAddressHigh: resetPointerAddressHigh,
				})
			}

			offset += 8
			if isNested {
				if count != 0 {
					return blockResult{
						finished:                false,
						block:                   Block{Codes: codes},
						count:                   EndIfCount{Count: count},
						bytesProcessed:          offset,
						resetBaseAddressHigh:    resetBaseAddressHigh,
						resetPointerAddressHigh: resetPointerAddressHigh,
					}
				}
			} else {
				codes = append(codes, ResetAddressHigh{
					ResetBaseAddressHigh:    resetBaseAddressHigh,
					ResetPointerAddressHigh: resetPointerAddressHigh,
				})
			}
		default:
			// The correct offset of the next code is unknowable, so stop
			// here and return what decoded cleanly.
			log.Error().Uint8("opcode", code).Msg("cannot process WiiRD code")
			return finishedBlock(codes)
		}
	}

	return finishedBlock(codes)
}

func jumpFlag(b uint8) (JumpFlag, bool) {
	switch b {
	case 0x00:
		return JumpWhenTrue, true
	case 0x10:
		return JumpWhenFalse, true
	case 0x20:
		return JumpAlways, true
	}
	return 0, false
}

func optionalRegister(present bool, register uint8) *uint8 {
	if !present {
		return nil
	}
	r := register
	return &r
}
