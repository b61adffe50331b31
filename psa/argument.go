package psa

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/GamendeMier/brawllib/internal/utils"
)

const argumentSize = 0x8

// Argument is one typed event argument. It is a closed set: the decoder
// maps every 8 byte argument record to exactly one of the types below,
// falling through to Unknown for type tags it does not recognize.
type Argument interface {
	isArgument()
}

// Value is a plain integer argument.
type Value int32

// Scalar is a fixed point fractional argument, stored as 1/60000ths.
type Scalar float32

// Offset is a byte offset into the script blob, used by control flow
// events to reference other scripts.
type Offset int32

// Bool is a flag argument. Only the exact value 1 is treated as true.
type Bool bool

// File is a file index argument.
type File int32

// Variable references a fighter state value.
type Variable struct {
	Memory   VariableMemory
	DataType VariableDataType
}

// Requirement is a predicate argument. Flip negates the test.
type Requirement struct {
	Flip bool
	Kind RequirementKind
}

// Unknown preserves an argument with an unrecognized type tag.
type Unknown struct {
	Type int32
	Data int32
}

func (Value) isArgument()       {}
func (Scalar) isArgument()      {}
func (Offset) isArgument()      {}
func (Bool) isArgument()        {}
func (File) isArgument()        {}
func (Variable) isArgument()    {}
func (Requirement) isArgument() {}
func (Unknown) isArgument()     {}

// arguments decodes numArguments 8 byte records starting at
// argumentOffset in the parent blob. A record past the end of the blob
// stops the walk with what decoded so far.
func arguments(parentData []byte, argumentOffset, numArguments int) []Argument {
	var result []Argument
	for i := 0; i < numArguments; i++ {
		recordOffset := argumentOffset + i*argumentSize
		ty, err := utils.ReadI32BE(parentData, recordOffset)
		if err != nil {
			log.Error().Err(err).Int("argument", i).Msg("argument record out of range")
			return result
		}
		data, err := utils.ReadI32BE(parentData, recordOffset+4)
		if err != nil {
			log.Error().Err(err).Int("argument", i).Msg("argument record out of range")
			return result
		}

		var argument Argument
		switch ty {
		case 0:
			argument = Value(data)
		case 1:
			argument = Scalar(float32(data) / 60000.0)
		case 2:
			argument = Offset(data)
		case 3:
			argument = Bool(data == 1)
		case 4:
			argument = File(data)
		case 5:
			raw := uint32(data)
			memoryType := uint8((raw & 0xF0000000) >> 28)
			dataType := uint8((raw & 0x0F000000) >> 24)
			memoryAddress := raw & 0x00FFFFFF

			argument = Variable{
				Memory:   newVariableMemory(memoryType, memoryAddress),
				DataType: VariableDataType(dataType),
			}
		case 6:
			argument = Requirement{
				Flip: (data>>31)&1 == 1,
				Kind: RequirementKind(data & 0xFF),
			}
		default:
			argument = Unknown{Type: ty, Data: data}
		}
		result = append(result, argument)
	}

	return result
}

// VariableMemory is the storage class of a Variable.
type VariableMemory interface {
	isVariableMemory()
}

// LongtermAccess is persistent fighter storage, known as LA in existing
// tools.
type LongtermAccess uint32

// RandomAccess is scratch fighter storage, known as RA in existing tools.
type RandomAccess uint32

// UnknownMemory preserves a variable with an unrecognized memory class.
type UnknownMemory struct {
	MemoryType    uint8
	MemoryAddress uint32
}

func (InternalConstant) isVariableMemory() {}
func (LongtermAccess) isVariableMemory()   {}
func (RandomAccess) isVariableMemory()     {}
func (UnknownMemory) isVariableMemory()    {}

func newVariableMemory(memoryType uint8, memoryAddress uint32) VariableMemory {
	switch memoryType {
	case 0:
		return InternalConstant(memoryAddress)
	case 1:
		return LongtermAccess(memoryAddress)
	case 2:
		return RandomAccess(memoryAddress)
	}
	return UnknownMemory{MemoryType: memoryType, MemoryAddress: memoryAddress}
}

// VariableDataType is the value type of a Variable. Values other than the
// named constants are preserved verbatim.
type VariableDataType uint8

// Data types. Int is known as Basic and Bool as Bit in existing tools.
const (
	VarInt   VariableDataType = 0
	VarFloat VariableDataType = 1
	VarBool  VariableDataType = 2
)

// String returns the data type name, or the raw value for unknown types.
func (t VariableDataType) String() string {
	switch t {
	case VarInt:
		return "Int"
	case VarFloat:
		return "Float"
	case VarBool:
		return "Bool"
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}
