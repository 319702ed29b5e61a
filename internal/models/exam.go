package models

import (
	"errors"
	"fmt"
)

var ErrUnknownExam = errors.New("unknown target exam")

// TargetExam is a closed set: the only valid values are the Exam* variables.
// The zero value is not a valid exam.
type TargetExam struct {
	code string
}

var (
	ExamCAT     = TargetExam{"CAT"}
	ExamGRE     = TargetExam{"GRE"}
	ExamGMAT    = TargetExam{"GMAT"}
	ExamBank    = TargetExam{"BANK"}
	ExamSSC     = TargetExam{"SSC"}
	ExamGATE    = TargetExam{"GATE"}
	ExamGeneral = TargetExam{"GENERAL"}
)

type examInfo struct {
	label       string
	description string
}

var examCatalogue = map[TargetExam]examInfo{
	ExamCAT:     {"CAT", "Common Admission Test"},
	ExamGRE:     {"GRE", "Graduate Record Examination"},
	ExamGMAT:    {"GMAT", "Graduate Management Admission Test"},
	ExamBank:    {"Bank Exams", "Banking sector examinations"},
	ExamSSC:     {"SSC", "Staff Selection Commission"},
	ExamGATE:    {"GATE", "Graduate Aptitude Test in Engineering"},
	ExamGeneral: {"General", "General aptitude practice"},
}

// TargetExams lists every exam in picker order.
func TargetExams() []TargetExam {
	return []TargetExam{ExamCAT, ExamGRE, ExamGMAT, ExamBank, ExamSSC, ExamGATE, ExamGeneral}
}

// ParseTargetExam maps a stored code such as "GMAT" to its exam.
func ParseTargetExam(s string) (TargetExam, error) {
	e := TargetExam{s}
	if !e.IsValid() {
		return TargetExam{}, fmt.Errorf("%w: %q", ErrUnknownExam, s)
	}
	return e, nil
}

func (e TargetExam) IsValid() bool {
	_, ok := examCatalogue[e]
	return ok
}

// String returns the persisted code.
func (e TargetExam) String() string { return e.code }

func (e TargetExam) Label() string { return examCatalogue[e].label }

func (e TargetExam) Description() string { return examCatalogue[e].description }

func (e TargetExam) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, ErrUnknownExam
	}
	return []byte(e.code), nil
}

func (e *TargetExam) UnmarshalText(b []byte) error {
	v, err := ParseTargetExam(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
