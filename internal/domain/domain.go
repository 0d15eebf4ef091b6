package domain

import (
	"github.com/yungbote/bacprep-backend/internal/domain/learning"
	"github.com/yungbote/bacprep-backend/internal/domain/mentoring"
	"github.com/yungbote/bacprep-backend/internal/domain/user"
)

type Student = user.Student
type Stream = user.Stream

var Streams = user.Streams

type Subject = learning.Subject
type Quiz = learning.Quiz
type Question = learning.Question
type QuestionSet = learning.QuestionSet
type Difficulty = learning.Difficulty
type Summary = learning.Summary

type Booking = mentoring.Booking
type BookingStatus = mentoring.BookingStatus
type Alumni = mentoring.Alumni

const (
	StreamScience    = user.StreamScience
	StreamLiterature = user.StreamLiterature
	StreamMathTech   = user.StreamMathTech
	StreamEconomics  = user.StreamEconomics
	StreamLanguages  = user.StreamLanguages

	DifficultyEasy   = learning.DifficultyEasy
	DifficultyMedium = learning.DifficultyMedium
	DifficultyHard   = learning.DifficultyHard

	BookingFirstOffer  = mentoring.BookingFirstOffer
	BookingSecondOffer = mentoring.BookingSecondOffer
	BookingThirdOffer  = mentoring.BookingThirdOffer
	BookingCompleted   = mentoring.BookingCompleted
)
