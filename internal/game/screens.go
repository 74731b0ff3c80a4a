package game

// Fixed text screens, drawn centered on black.
var (
	splashScreen = []string{
		`  ___  _   _____   ___  ____   ___  `,
		` // \\ \\ //|| \\ // \\ || \\ // \\ `,
		` ||     \V/ ||_// || || ||_// ||___ `,
		` ||     //  || \\ || || ||\\  || || `,
		` \\_// //   ||_// \\_// || \\ \\_// `,
		`          _   _   _  ___ __  _      `,
		`      |  / \ /   /_\  |  |_ /_      `,
		`      |_ \_/ \_ /   \ |  |_ _/      `,
		` _____ _____ _     _  ___  _  _____ `,
		` ||    ||    ||    || ||\\ || ||    `,
		` ||__  ||__  ||    || || \\|| ||__  `,
		` ||    ||    ||    || ||  \|| ||    `,
		` ||    ||___ ||___ || ||   || ||___ `,
		`                                    `,
		`      'I' for instructions.         `,
		`     Any other key to start.        `,
	}

	instructionsScreen = []string{
		"You are cyborg. You look like this - @",
		"Your visual sensors are on the fritz.",
		"You see things, but can't identify them.",
		"What's worse, feline is missing!",
		"To find out what something is, use the arrow keys",
		"to move around until you bump into it.",
		"With persistence, you will find feline in no time!",
		" ",
		"Any key to start.",
	}

	winScreen = []string{
		` It is feline! You are reunited at last! `,
		`                 __ __                   `,
		`                /##V##\   |              `,
		`           ^_^  \#####/   0              `,
		`           0 0   \###/  >-#-<            `,
		`          >\I/<   \#/    _^_             `,
		`                   V    (0o0)            `,
		`                                         `,
		`              'Q' to quit.               `,
		`            'C' for credits.             `,
		`      Any other key to play again.       `,
	}

	creditsScreen = []string{
		"Cyborg Locates Feline by Eric Shumaker.",
		"Terminal edition built with Bubble Tea.",
		" ",
		"Inspired by 'robotfindskitten'",
		"by Leonard Richardson (crummy.com).",
	}
)

// screenText returns the fixed text for m, or nil for modes drawn on the board.
func screenText(m Mode) []string {
	switch m {
	case ModeSplash:
		return splashScreen
	case ModeInstructions:
		return instructionsScreen
	case ModeWin:
		return winScreen
	case ModeCredits:
		return creditsScreen
	}
	return nil
}
