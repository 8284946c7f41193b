package cli

import "github.com/quickworkapp/quickwork-cli/internal/client/session"

// Screen identifies a navigable view of the client.
type Screen string

const (
	// Unauthenticated group.
	ScreenWelcome  Screen = "welcome"
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"

	// Protected group.
	ScreenJobs    Screen = "jobs"
	ScreenPost    Screen = "post"
	ScreenProfile Screen = "profile"
)

// protected reports whether s belongs to the authenticated screen group.
func protected(s Screen) bool {
	switch s {
	case ScreenJobs, ScreenPost, ScreenProfile:
		return true
	default:
		return false
	}
}

// Resolve applies the navigation guard: given the session state and the
// requested target, it returns the screen actually shown.
//
//   - unauthenticated + protected target  -> login
//   - authenticated + unauthenticated target -> jobs (the protected home)
//   - StateUnknown never redirects; callers gate rendering until the
//     session is resolved, so no wrong content can flash.
func Resolve(state session.State, target Screen) Screen {
	switch state {
	case session.StateUnauthenticated:
		if protected(target) {
			return ScreenLogin
		}
	case session.StateAuthenticated:
		if !protected(target) {
			return ScreenJobs
		}
	}
	return target
}
