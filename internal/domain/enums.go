package domain

// Difficulty is the review tier of a studied word.
type Difficulty string

const (
	DifficultyHard      Difficulty = "hard"
	DifficultyGood      Difficulty = "good"
	DifficultyEasy      Difficulty = "easy"
	DifficultyCompleted Difficulty = "completed"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyHard, DifficultyGood, DifficultyEasy, DifficultyCompleted:
		return true
	}
	return false
}

// Rating is the user's self-assessment for one flashcard.
type Rating string

const (
	RatingHard Rating = "hard"
	RatingGood Rating = "good"
	RatingEasy Rating = "easy"
)

func (r Rating) String() string { return string(r) }

func (r Rating) IsValid() bool {
	switch r {
	case RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// CardFace names the word field shown on the front of a flashcard.
type CardFace string

const (
	CardFaceTerm           CardFace = "term"
	CardFaceTranslation    CardFace = "translation"
	CardFaceAltTranslation CardFace = "alt_translation"
	CardFaceImage          CardFace = "image"
)

// CardFaceOrder is the fallback order used when the preferred face is empty.
var CardFaceOrder = []CardFace{
	CardFaceTerm,
	CardFaceTranslation,
	CardFaceAltTranslation,
	CardFaceImage,
}

func (f CardFace) String() string { return string(f) }

func (f CardFace) IsValid() bool {
	switch f {
	case CardFaceTerm, CardFaceTranslation, CardFaceAltTranslation, CardFaceImage:
		return true
	}
	return false
}
