package sound

import "github.com/ayoisaiah/pomobar/internal/apperr"

var (
	errAssetNotFound = &apperr.Error{
		Message: "no audio file for %s in %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in ogg, mp3, flac or wav format",
	}

	errDecode = &apperr.Error{
		Message: "unable to decode %s",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the audio device",
	}
)
