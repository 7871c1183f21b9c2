package testutils

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// RandomPlayerID generates a unique email-like identity.
func RandomPlayerID() sharedtypes.PlayerID {
	name := strings.ToLower(gofakeit.Username())
	return sharedtypes.PlayerID(fmt.Sprintf("%s-%s@example.com", name, gofakeit.LetterN(6)))
}

// RandomDisplayName generates a plausible display name.
func RandomDisplayName() sharedtypes.DisplayName {
	return sharedtypes.DisplayName(gofakeit.Name())
}

// RandomCourse generates a golf-course-sounding name.
func RandomCourse() sharedtypes.CourseName {
	return sharedtypes.CourseName(gofakeit.City() + " National")
}
