package psa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternalConstantString(t *testing.T) {
	tests := []struct {
		ic   InternalConstant
		want string
	}{
		{ICCurrentFrame, "CurrentFrame"},
		{ICDamage, "Damage"},
		{ICKnockback, "Knockback"},
		{ICXVelocity, "XVelocity"},
		{ICControlStickYAxis2, "ControlStickYAxis2"},
		{ICPreviousControlStickYAxisReverse, "PreviousControlStickYAxisReverse"},
		{ICCurrentSubaction, "CurrentSubaction"},
		{ICEffectOfAttack, "EffectOfAttack"},
		{ICTermVelFrameTimer, "TermVelFrameTimer"},
		{InternalConstant(1), "Address(1)"},
		{InternalConstant(99999), "Address(99999)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.ic.String())
	}
}

func TestInternalConstantKnown(t *testing.T) {
	require.True(t, ICGlideStartTimer.Known())
	require.False(t, InternalConstant(12345).Known())
}

func TestRequirementKindString(t *testing.T) {
	tests := []struct {
		req  RequirementKind
		want string
	}{
		{ReqCharacterExists, "CharacterExists"},
		{ReqAnimationEnd, "AnimationEnd"},
		{ReqComparison, "Comparison"},
		{ReqButtonMashingOrStatusExpiredSleepBuryFreeze, "ButtonMashingOrStatusExpiredSleepBuryFreeze"},
		{ReqTapJumpOn, "TapJumpOn"},
		{RequirementKind(14), "Unknown(14)"},
		{RequirementKind(200), "Unknown(200)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.req.String())
	}
}

func TestRequirementKindKnown(t *testing.T) {
	require.True(t, ReqRollADie.Known())
	require.False(t, RequirementKind(14).Known())
}
