package psa

import "strconv"

// InternalConstant is a named game-state address, known as IC in existing
// tools. Addresses outside the named set are preserved verbatim and
// render as a raw address.
type InternalConstant uint32

// Named internal constants.
const (
	ICCurrentFrame                InternalConstant = 0
	ICDamage                      InternalConstant = 2
	ICCharacterXPosition          InternalConstant = 3
	ICCharacterYPosition          InternalConstant = 4
	ICCharacterDirection          InternalConstant = 8
	ICCharacterDirectionOpposite  InternalConstant = 9
	ICVerticalCharacterVelocity   InternalConstant = 23
	ICCurrentFrameSpeed           InternalConstant = 24
	ICHorizontalCharacterVelocity InternalConstant = 28
	ICKnockback                   InternalConstant = 38
	ICSurfaceTraction             InternalConstant = 39

	ICXVelocity   InternalConstant = 1000
	ICLaunchSpeed InternalConstant = 1005

	ICRightVelocity InternalConstant = 1006
	ICLeftVelocity  InternalConstant = 1007
	ICUpVelocity    InternalConstant = 1008
	ICDownVelocity  InternalConstant = 1009

	ICControlStickXAxis                InternalConstant = 1010
	ICControlStickXAxisRelative        InternalConstant = 1011
	ICControlStickXAxisRelativeReverse InternalConstant = 1012
	ICControlStickXAxisAbsolute        InternalConstant = 1013
	ICControlStickXAxisReverse         InternalConstant = 1014
	ICControlStickXAxisReverse2        InternalConstant = 1017
	ICControlStickYAxis                InternalConstant = 1018
	ICControlStickYAxisAbsolute        InternalConstant = 1019
	ICControlStickYAxisReverse         InternalConstant = 1020
	ICControlStickYAxis2               InternalConstant = 1021

	ICPreviousControlStickXAxis                InternalConstant = 1022
	ICPreviousControlStickXAxisRelative        InternalConstant = 1023
	ICPreviousControlStickXAxisRelativeReverse InternalConstant = 1024
	ICPreviousControlStickXAxisAbsolute        InternalConstant = 1025
	ICPreviousControlStickYAxis                InternalConstant = 1026
	ICPreviousControlStickYAxisAbsolute        InternalConstant = 1027
	ICPreviousControlStickYAxisReverse         InternalConstant = 1028

	ICCurrentSubaction InternalConstant = 20000
	ICCurrentAction    InternalConstant = 20001
	ICPreviousAction   InternalConstant = 20003
	ICHeldItem         InternalConstant = 20009
	ICEffectOfAttack   InternalConstant = 21004

	ICFramesSinceNormal  InternalConstant = 21010
	ICFramesSinceSpecial InternalConstant = 21012
	ICFramesSinceJump    InternalConstant = 21014
	ICFramesSinceShield  InternalConstant = 21016
	ICFramesSinceShield2 InternalConstant = 21018

	ICTurnRunFrameTimer InternalConstant = 23001
	ICJumpStartTimer    InternalConstant = 23002
	ICMaxJumpCount      InternalConstant = 23003
	ICGlideStartTimer   InternalConstant = 23004
	ICTermVelFrameTimer InternalConstant = 23007
)

var internalConstantNames = map[InternalConstant]string{
	ICCurrentFrame:                             "CurrentFrame",
	ICDamage:                                   "Damage",
	ICCharacterXPosition:                       "CharacterXPosition",
	ICCharacterYPosition:                       "CharacterYPosition",
	ICCharacterDirection:                       "CharacterDirection",
	ICCharacterDirectionOpposite:               "CharacterDirectionOpposite",
	ICVerticalCharacterVelocity:                "VerticalCharacterVelocity",
	ICCurrentFrameSpeed:                        "CurrentFrameSpeed",
	ICHorizontalCharacterVelocity:              "HorizontalCharacterVelocity",
	ICKnockback:                                "Knockback",
	ICSurfaceTraction:                          "SurfaceTraction",
	ICXVelocity:                                "XVelocity",
	ICLaunchSpeed:                              "LaunchSpeed",
	ICRightVelocity:                            "RightVelocity",
	ICLeftVelocity:                             "LeftVelocity",
	ICUpVelocity:                               "UpVelocity",
	ICDownVelocity:                             "DownVelocity",
	ICControlStickXAxis:                        "ControlStickXAxis",
	ICControlStickXAxisRelative:                "ControlStickXAxisRelative",
	ICControlStickXAxisRelativeReverse:         "ControlStickXAxisRelativeReverse",
	ICControlStickXAxisAbsolute:                "ControlStickXAxisAbsolute",
	ICControlStickXAxisReverse:                 "ControlStickXAxisReverse",
	ICControlStickXAxisReverse2:                "ControlStickXAxisReverse2",
	ICControlStickYAxis:                        "ControlStickYAxis",
	ICControlStickYAxisAbsolute:                "ControlStickYAxisAbsolute",
	ICControlStickYAxisReverse:                 "ControlStickYAxisReverse",
	ICControlStickYAxis2:                       "ControlStickYAxis2",
	ICPreviousControlStickXAxis:                "PreviousControlStickXAxis",
	ICPreviousControlStickXAxisRelative:        "PreviousControlStickXAxisRelative",
	ICPreviousControlStickXAxisRelativeReverse: "PreviousControlStickXAxisRelativeReverse",
	ICPreviousControlStickXAxisAbsolute:        "PreviousControlStickXAxisAbsolute",
	ICPreviousControlStickYAxis:                "PreviousControlStickYAxis",
	ICPreviousControlStickYAxisAbsolute:        "PreviousControlStickYAxisAbsolute",
	ICPreviousControlStickYAxisReverse:         "PreviousControlStickYAxisReverse",
	ICCurrentSubaction:                         "CurrentSubaction",
	ICCurrentAction:                            "CurrentAction",
	ICPreviousAction:                           "PreviousAction",
	ICHeldItem:                                 "HeldItem",
	ICEffectOfAttack:                           "EffectOfAttack",
	ICFramesSinceNormal:                        "FramesSinceNormal",
	ICFramesSinceSpecial:                       "FramesSinceSpecial",
	ICFramesSinceJump:                          "FramesSinceJump",
	ICFramesSinceShield:                        "FramesSinceShield",
	ICFramesSinceShield2:                       "FramesSinceShield2",
	ICTurnRunFrameTimer:                        "TurnRunFrameTimer",
	ICJumpStartTimer:                           "JumpStartTimer",
	ICMaxJumpCount:                             "MaxJumpCount",
	ICGlideStartTimer:                          "GlideStartTimer",
	ICTermVelFrameTimer:                        "TermVelFrameTimer",
}

// Known reports whether the constant is one of the named addresses.
func (ic InternalConstant) Known() bool {
	_, ok := internalConstantNames[ic]
	return ok
}

// String returns the constant name, or the raw address for unnamed
// constants.
func (ic InternalConstant) String() string {
	if name, ok := internalConstantNames[ic]; ok {
		return name
	}
	return "Address(" + strconv.FormatUint(uint64(ic), 10) + ")"
}
