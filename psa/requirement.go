package psa

import "strconv"

// RequirementKind is the predicate tested by a Requirement argument.
// Codes outside the named set are preserved verbatim.
type RequirementKind int32

// Named requirements.
const (
	ReqCharacterExists                             RequirementKind = 0
	ReqAnimationEnd                                RequirementKind = 1
	ReqAnimationHasLooped                          RequirementKind = 2
	ReqOnGround                                    RequirementKind = 3
	ReqInAir                                       RequirementKind = 4
	ReqHoldingALedge                               RequirementKind = 5
	ReqOnAPassableFloor                            RequirementKind = 6
	ReqComparison                                  RequirementKind = 7
	ReqBoolIsTrue                                  RequirementKind = 8
	ReqFacingRight                                 RequirementKind = 9
	ReqFacingLeft                                  RequirementKind = 10
	ReqHitboxConnects                              RequirementKind = 11
	ReqTouchingAFloorWallOrCeiling                 RequirementKind = 12
	ReqIsThrowingSomeone                           RequirementKind = 13
	ReqButtonTap                                   RequirementKind = 15
	ReqEnteringOrIsInHitLag                        RequirementKind = 20
	ReqArticleExists                               RequirementKind = 21
	ReqHasAFloorBelowThePlayer                     RequirementKind = 23
	ReqChangeInAirGroundState                      RequirementKind = 27
	ReqArticleAvailable                            RequirementKind = 28
	ReqHoldingItem                                 RequirementKind = 31
	ReqHoldingItemOfType                           RequirementKind = 32
	ReqLightItemIsInGrabRange                      RequirementKind = 33
	ReqHeavyItemIsInGrabRange                      RequirementKind = 34
	ReqItemOfTypeIsInGrabbingRange                 RequirementKind = 35
	ReqTurningWithItem                             RequirementKind = 36
	ReqInWater                                     RequirementKind = 42
	ReqRollADie                                    RequirementKind = 43
	ReqSubactionExists                             RequirementKind = 44
	ReqButtonMashingOrStatusExpiredSleepBuryFreeze RequirementKind = 46
	ReqIsNotInDamagingLens                         RequirementKind = 47
	ReqButtonPress                                 RequirementKind = 48
	ReqButtonRelease                               RequirementKind = 49
	ReqButtonPressed                               RequirementKind = 50
	ReqButtonNotPressed                            RequirementKind = 51
	ReqStickDirectionPressed                       RequirementKind = 52
	ReqStickDirectionNotPressed                    RequirementKind = 53
	ReqIsBeingThrownBySomeone1                     RequirementKind = 55
	ReqIsBeingThrownBySomeone2                     RequirementKind = 56
	ReqHasntTethered3Times                         RequirementKind = 57
	ReqHasPassedOverAnEdgeForward                  RequirementKind = 58
	ReqHasPassedOverAnEdgeBackward                 RequirementKind = 59
	ReqIsHoldingSomeoneInGrab                      RequirementKind = 60
	ReqHitboxHasConnected                          RequirementKind = 61
	ReqPickUpItem                                  RequirementKind = 71
	ReqHitByCapeEffect                             RequirementKind = 76
	ReqInWalljump                                  RequirementKind = 103
	ReqInWallCling                                 RequirementKind = 104
	ReqInFootstoolRange                            RequirementKind = 105
	ReqIsFallingOrHitDown                          RequirementKind = 108
	ReqHasSmashBall                                RequirementKind = 109
	ReqCanPickupAnotherItem                        RequirementKind = 111
	ReqFSmashShorcut                               RequirementKind = 115
	ReqTapJumpOn                                   RequirementKind = 123
)

var requirementNames = map[RequirementKind]string{
	ReqCharacterExists:             "CharacterExists",
	ReqAnimationEnd:                "AnimationEnd",
	ReqAnimationHasLooped:          "AnimationHasLooped",
	ReqOnGround:                    "OnGround",
	ReqInAir:                       "InAir",
	ReqHoldingALedge:               "HoldingALedge",
	ReqOnAPassableFloor:            "OnAPassableFloor",
	ReqComparison:                  "Comparison",
	ReqBoolIsTrue:                  "BoolIsTrue",
	ReqFacingRight:                 "FacingRight",
	ReqFacingLeft:                  "FacingLeft",
	ReqHitboxConnects:              "HitboxConnects",
	ReqTouchingAFloorWallOrCeiling: "TouchingAFloorWallOrCeiling",
	ReqIsThrowingSomeone:           "IsThrowingSomeone",
	ReqButtonTap:                   "ButtonTap",
	ReqEnteringOrIsInHitLag:        "EnteringOrIsInHitLag",
	ReqArticleExists:               "ArticleExists",
	ReqHasAFloorBelowThePlayer:     "HasAFloorBelowThePlayer",
	ReqChangeInAirGroundState:      "ChangeInAirGroundState",
	ReqArticleAvailable:            "ArticleAvailable",
	ReqHoldingItem:                 "HoldingItem",
	ReqHoldingItemOfType:           "HoldingItemOfType",
	ReqLightItemIsInGrabRange:      "LightItemIsInGrabRange",
	ReqHeavyItemIsInGrabRange:      "HeavyItemIsInGrabRange",
	ReqItemOfTypeIsInGrabbingRange: "ItemOfTypeIsInGrabbingRange",
	ReqTurningWithItem:             "TurningWithItem",
	ReqInWater:                     "InWater",
	ReqRollADie:                    "RollADie",
	ReqSubactionExists:             "SubactionExists",
	ReqButtonMashingOrStatusExpiredSleepBuryFreeze: "ButtonMashingOrStatusExpiredSleepBuryFreeze",
	ReqIsNotInDamagingLens:         "IsNotInDamagingLens",
	ReqButtonPress:                 "ButtonPress",
	ReqButtonRelease:               "ButtonRelease",
	ReqButtonPressed:               "ButtonPressed",
	ReqButtonNotPressed:            "ButtonNotPressed",
	ReqStickDirectionPressed:       "StickDirectionPressed",
	ReqStickDirectionNotPressed:    "StickDirectionNotPressed",
	ReqIsBeingThrownBySomeone1:     "IsBeingThrownBySomeone1",
	ReqIsBeingThrownBySomeone2:     "IsBeingThrownBySomeone2",
	ReqHasntTethered3Times:         "HasntTethered3Times",
	ReqHasPassedOverAnEdgeForward:  "HasPassedOverAnEdgeForward",
	ReqHasPassedOverAnEdgeBackward: "HasPassedOverAnEdgeBackward",
	ReqIsHoldingSomeoneInGrab:      "IsHoldingSomeoneInGrab",
	ReqHitboxHasConnected:          "HitboxHasConnected",
	ReqPickUpItem:                  "PickUpItem",
	ReqHitByCapeEffect:             "HitByCapeEffect",
	ReqInWalljump:                  "InWalljump",
	ReqInWallCling:                 "InWallCling",
	ReqInFootstoolRange:            "InFootstoolRange",
	ReqIsFallingOrHitDown:          "IsFallingOrHitDown",
	ReqHasSmashBall:                "HasSmashBall",
	ReqCanPickupAnotherItem:        "CanPickupAnotherItem",
	ReqFSmashShorcut:               "FSmashShorcut",
	ReqTapJumpOn:                   "TapJumpOn",
}

// Known reports whether the requirement is one of the named predicates.
func (r RequirementKind) Known() bool {
	_, ok := requirementNames[r]
	return ok
}

// String returns the requirement name, or the raw code for unnamed
// requirements.
func (r RequirementKind) String() string {
	if name, ok := requirementNames[r]; ok {
		return name
	}
	return "Unknown(" + strconv.FormatInt(int64(r), 10) + ")"
}
