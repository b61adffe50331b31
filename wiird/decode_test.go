package wiird

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func reg(r uint8) *uint8 {
	return &r
}

func TestCodes_WriteAndFill32(t *testing.T) {
	data := []byte{
		0x04, 0x00, 0x01, 0x00, 0xAA, 0xBB, 0xCC, 0xDD,
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill32{UseBaseAddress: true, Address: 0x0000_0100, Value: 0xAABBCCDD},
	}, block.Codes)
}

func TestCodes_WriteAndFill8And16(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x10, 0x00, 0x04, 0x00, 0xAB, // fill 5 bytes of 0xAB
		0x02, 0x00, 0x00, 0x20, 0x00, 0x02, 0xBE, 0xEF, // fill 3 halfwords of 0xBEEF
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill8{UseBaseAddress: true, Address: 0x10, Value: 0xAB, Length: 5},
		WriteAndFill16{UseBaseAddress: true, Address: 0x20, Value: 0xBEEF, Length: 3},
	}, block.Codes)
}

func TestCodes_PointerAddressBit(t *testing.T) {
	// Bit 4 of byte 0 set selects the pointer address.
	data := []byte{
		0x14, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill32{UseBaseAddress: false, Address: 0x100, Value: 1},
	}, block.Codes)
}

func TestCodes_StringWritePadding(t *testing.T) {
	data := []byte{
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		'A', 'B', 'C', 0x00, 0x00, 0x00, 0x00, 0x00,
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		StringWrite{UseBaseAddress: true, Address: 0, Values: []byte{0x41, 0x42, 0x43}},
	}, block.Codes)
}

func TestCodes_StringWriteExactMultiple(t *testing.T) {
	// An 8 byte payload needs no padding; the next code follows directly.
	data := []byte{
		0x06, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x08,
		1, 2, 3, 4, 5, 6, 7, 8,
		0x04, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x02,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		StringWrite{UseBaseAddress: true, Address: 8, Values: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		WriteAndFill32{UseBaseAddress: true, Address: 4, Value: 2},
	}, block.Codes)
}

func TestCodes_SerialWrite(t *testing.T) {
	data := []byte{
		0x08, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x05,
		0x02, 0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		SerialWrite{
			UseBaseAddress:   true,
			Address:          0x20,
			InitialValue:     5,
			ValueSize:        0x02,
			Count:            0x210 + 1,
			AddressIncrement: 4,
			ValueIncrement:   1,
		},
	}, block.Codes)
}

func TestCodes_MaskedIfEndif(t *testing.T) {
	data := []byte{
		0x28, 0x00, 0x00, 0x10, 0x00, 0xFF, 0x00, 0x0A,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
		0xE0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		IfStatement{
			Test: IsEqualMask{UseBaseAddress: true, Address: 0x10, LHSMask: 0x00FF, RHSValue: 0x000A},
			ThenBranch: Block{Codes: []Code{
				WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 1},
			}},
		},
		ResetAddressHigh{},
	}, block.Codes)
}

func TestCodes_IfAddressLowBit(t *testing.T) {
	// The low address bit is an insert-endif marker, not part of the
	// address.
	data := []byte{
		0x20, 0x00, 0x00, 0x11, 0x00, 0x00, 0x00, 0x07,
		0xE0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Len(t, block.Codes, 2)

	ifStatement, ok := block.Codes[0].(IfStatement)
	require.True(t, ok)
	require.True(t, ifStatement.InsertEndif)
	require.Equal(t, IsEqual{UseBaseAddress: true, Address: 0x10, Value: 7}, ifStatement.Test)
}

func TestCodes_NestedIfMultiPop(t *testing.T) {
	// An E2 with count 2 closes both nested conditionals at once.
	data := []byte{
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x22, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x03,
		0xE2, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		IfStatement{
			Test: IsEqual{UseBaseAddress: true, Address: 0, Value: 1},
			ThenBranch: Block{Codes: []Code{
				IfStatement{
					Test: IsNotEqual{UseBaseAddress: true, Address: 0, Value: 2},
					ThenBranch: Block{Codes: []Code{
						WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 3},
					}},
				},
			}},
		},
		ResetAddressHigh{},
	}, block.Codes)
}

func TestCodes_ElseInsideThenBranch(t *testing.T) {
	data := []byte{
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x02,
		0xE2, 0x10, 0x00, 0x00, 0x00, 0x11, 0x00, 0x22,
		0x04, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x03,
		0xE0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		IfStatement{
			Test: IsEqual{UseBaseAddress: true, Address: 0, Value: 1},
			ThenBranch: Block{Codes: []Code{
				WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 2},
				Else{EndifCount: 0, ResetBaseAddressHigh: 0x11, ResetPointerAddressHigh: 0x22},
				WriteAndFill32{UseBaseAddress: true, Address: 0x200, Value: 3},
			}},
		},
		ResetAddressHigh{},
	}, block.Codes)
}

func TestCodes_TopLevelTerminators(t *testing.T) {
	data := []byte{
		0xE0, 0x00, 0x00, 0x00, 0x12, 0x34, 0x56, 0x78,
		0xE2, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		ResetAddressHigh{ResetBaseAddressHigh: 0x1234, ResetPointerAddressHigh: 0x5678},
		ResetAddressHigh{ResetBaseAddressHigh: 0x0001, ResetPointerAddressHigh: 0x0002},
	}, block.Codes)
}

func TestCodes_UnterminatedIf(t *testing.T) {
	data := []byte{
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x02,
	}

	block := Codes(data)
	require.Empty(t, block.Codes)
}

func TestCodes_GotoAlwaysElided(t *testing.T) {
	// An unconditional forward goto declares a data section: the two
	// skipped rows must never reach the decoder.
	data := []byte{
		0x66, 0x20, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x09,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 9},
	}, block.Codes)
}

func TestCodes_GotoConditionalEmitted(t *testing.T) {
	data := []byte{
		0x66, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		Goto{Flag: JumpWhenFalse, OffsetLines: 2},
		WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 1},
	}, block.Codes)
}

func TestCodes_GotoAlwaysBackwardsEmitted(t *testing.T) {
	data := []byte{
		0x66, 0x20, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		Goto{Flag: JumpAlways, OffsetLines: -1},
	}, block.Codes)
}

func TestCodes_UnknownJumpFlag(t *testing.T) {
	data := []byte{
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x66, 0x30, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 1},
	}, block.Codes)
}

func TestCodes_RepeatAndReturn(t *testing.T) {
	data := []byte{
		0x60, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x07,
		0x62, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		0x64, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
		0x68, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x05,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		SetRepeat{Count: 5, BlockID: 7},
		ExecuteRepeat{BlockID: 3},
		Return{Flag: JumpWhenFalse, BlockID: 2},
		Subroutine{Flag: JumpWhenTrue, OffsetLines: 3, BlockID: 5},
	}, block.Codes)
}

func TestCodes_BaseAddressFamily(t *testing.T) {
	data := []byte{
		0x40, 0x11, 0x10, 0x02, 0x80, 0x00, 0x30, 0x00,
		0x52, 0x01, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00,
		0x44, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x04,
		0x46, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		LoadBaseAddress{
			AddResult:     true,
			AddMemAddress: AddBaseAddress,
			GeckoRegister: reg(2),
			MemAddress:    0x80003000,
		},
		SetBaseAddress{
			AddResult:     false,
			Add:           AddPointerAddress,
			GeckoRegister: nil,
			Value:         0x80000000,
		},
		StoreBaseAddress{
			AddMemAddress: AddNone,
			GeckoRegister: nil,
			MemAddress:    0x80000004,
		},
		SetBaseAddressToCodeLocation{AddressOffset: 0x10},
	}, block.Codes)
}

func TestCodes_PointerAddressFamily(t *testing.T) {
	data := []byte{
		0x48, 0x01, 0x10, 0x01, 0x80, 0x00, 0x00, 0x00,
		0x4A, 0x00, 0x00, 0x00, 0x80, 0x00, 0x10, 0x00,
		0x4C, 0x01, 0x00, 0x00, 0x80, 0x00, 0x00, 0x08,
		0x4E, 0x00, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		LoadPointerAddress{
			AddResult:     false,
			AddMemAddress: AddBaseAddress,
			GeckoRegister: reg(1),
			MemAddress:    0x80000000,
		},
		SetPointerAddress{
			AddResult:     false,
			Add:           AddNone,
			GeckoRegister: nil,
			Value:         0x80001000,
		},
		StorePointerAddress{
			AddMemAddress: AddBaseAddress,
			GeckoRegister: nil,
			MemAddress:    0x80000008,
		},
		SetPointerAddressToCodeLocation{AddressOffset: -0x10},
	}, block.Codes)
}

func TestCodes_GeckoRegisters(t *testing.T) {
	data := []byte{
		0x80, 0x11, 0x00, 0x02, 0x00, 0x00, 0x00, 0x08,
		0x82, 0x00, 0x00, 0x03, 0x80, 0x00, 0x00, 0x00,
		0x84, 0x00, 0x00, 0x04, 0x80, 0x00, 0x00, 0x04,
		0x86, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02,
		0x88, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x03,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		SetGeckoRegister{AddResult: true, Add: AddBaseAddress, Register: 2, Value: 8},
		LoadGeckoRegister{Register: 3, MemAddress: 0x80000000},
		StoreGeckoRegister{Register: 4, MemAddress: 0x80000004},
		OperationGeckoRegisterDirectValue{
			Operation:    GeckoAdd,
			LoadRegister: true,
			LoadValue:    true,
			Register:     1,
			Value:        2,
		},
		OperationGeckoRegister{
			Operation:     GeckoAdd,
			LoadRegister1: false,
			LoadRegister2: true,
			Register1:     1,
			Register2:     3,
		},
	}, block.Codes)
}

func TestCodes_GeckoOperationRawByte(t *testing.T) {
	// The operation byte is preserved masked but unshifted.
	data := []byte{
		0x86, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02,
	}

	block := Codes(data)
	op := block.Codes[0].(OperationGeckoRegisterDirectValue).Operation
	require.Equal(t, GeckoOperation(0x10), op)
	require.False(t, op.Known())
	require.Equal(t, "Unknown(0x10)", op.String())
}

func TestCodes_MemoryCopy(t *testing.T) {
	data := []byte{
		0x8A, 0x00, 0x10, 0xF2, 0x80, 0x00, 0x00, 0x00,
		0x8A, 0x00, 0x08, 0x0F, 0x80, 0x00, 0x00, 0x04,
		0x8C, 0x00, 0x04, 0xF1, 0x80, 0x00, 0x00, 0x08,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		MemoryCopy1{
			UseBaseAddress: true,
			Count:          0x0010,
			SourceRegister: 0xF0,
			DestRegister:   reg(2),
			DestOffset:     0x80000000,
		},
		MemoryCopy1{
			UseBaseAddress: true,
			Count:          0x0008,
			SourceRegister: 0x00,
			DestRegister:   nil, // 0x0F encodes "none"
			DestOffset:     0x80000004,
		},
		MemoryCopy2{
			UseBaseAddress: true,
			Count:          0x0004,
			SourceRegister: nil, // 0xF0 encodes "none"
			DestRegister:   1,
			SourceOffset:   0x80000008,
		},
	}, block.Codes)
}

func TestCodes_ExecuteAndInsertPPC(t *testing.T) {
	data := []byte{
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x7C, 0x08, 0x02, 0xA6, 0x4E, 0x80, 0x00, 0x20,
		0xC2, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x38, 0x60, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		ExecutePPC{InstructionData: []byte{0x7C, 0x08, 0x02, 0xA6, 0x4E, 0x80, 0x00, 0x20}},
		InsertPPC{
			UseBaseAddress:  true,
			Address:         0x100,
			InstructionData: []byte{0x38, 0x60, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00},
		},
	}, block.Codes)
}

func TestCodes_UnknownOpcodeReturnsPartial(t *testing.T) {
	data := []byte{
		0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x02,
	}

	block := Codes(data)
	require.Equal(t, []Code{
		WriteAndFill32{UseBaseAddress: true, Address: 0x100, Value: 1},
	}, block.Codes)
}

func TestCodes_TruncatedStreams(t *testing.T) {
	valid := []byte{
		0x28, 0x00, 0x00, 0x10, 0x00, 0xFF, 0x00, 0x0A,
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		'A', 'B', 'C', 0x00, 0x00, 0x00, 0x00, 0x00,
		0xE0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x05,
		0x02, 0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01,
		0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// No prefix of a valid stream may crash the decoder.
	for i := 0; i <= len(valid); i++ {
		require.NotPanics(t, func() {
			Codes(valid[:i])
		}, "prefix of %d bytes", i)
	}
}

func TestCodes_Empty(t *testing.T) {
	require.Empty(t, Codes(nil).Codes)
	require.Empty(t, Codes([]byte{}).Codes)
}
