package skill

import (
	"context"

	"github.com/letmevibethatforyou/voicesearch/alexa"
)

const (
	welcomeSpeech   = "Welcome to the newest tourism board in Belfast. You can discover restaurants and nightlife by asking me questions. For example, you can say, tell me an italian restaurant. "
	welcomeReprompt = "For example, you can say, recommend me an asian restaurant, or where can I hear jazz. "

	helpSpeech   = "You can ask me about restaurants and nightlife in Belfast. Ask for a cuisine, such as recommend me an italian restaurant, or a restaurant by name, such as tell me about Yugo. For nightlife, ask for a bar by name, a type of venue such as a pub, a day such as friday, or a music genre such as jazz. What would you like to find? "
	helpReprompt = "What would you like to find? You can say stop to leave the skill. "

	goodbyeSpeech = "Good Bye. "

	unknownIntentSpeech = "Unknown intent"
)

func launchReply() alexa.Reply {
	return alexa.Reply{Speech: welcomeSpeech, Reprompt: welcomeReprompt}
}

func unknownIntentReply() alexa.Reply {
	return alexa.Reply{Speech: unknownIntentSpeech, EndSession: true}
}

// stopIntent ends the session and drops any stored cursor.
func stopIntent(ctx context.Context, turn Turn) (Outcome, error) {
	return Outcome{Reply: alexa.Reply{Speech: goodbyeSpeech, EndSession: true}}, nil
}

// helpIntent keeps the session and any stored cursor.
func helpIntent(ctx context.Context, turn Turn) (Outcome, error) {
	return Outcome{
		Reply:  alexa.Reply{Speech: helpSpeech, Reprompt: helpReprompt},
		Cursor: turn.Cursor,
	}, nil
}
