package domain

import "testing"

func TestCourseRecordValidate(t *testing.T) {
	t.Parallel()

	valid := CourseRecord{
		Code:     "CS101",
		Name:     "Introduction to Computer Science",
		Credits:  3,
		Category: "Computer Science",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.Code = ""
	if err := invalid.Validate(); err != ErrCourseCodeEmpty {
		t.Errorf("Expected error %v, got %v", ErrCourseCodeEmpty, err)
	}

	invalid = valid
	invalid.Code = "   "
	if err := invalid.Validate(); err != ErrCourseCodeEmpty {
		t.Errorf("Expected error %v, got %v", ErrCourseCodeEmpty, err)
	}

	invalid = valid
	invalid.Credits = 0
	if err := invalid.Validate(); err != ErrCourseCreditsInvalid {
		t.Errorf("Expected error %v, got %v", ErrCourseCreditsInvalid, err)
	}
}

func TestCourseRecordHasPrerequisites(t *testing.T) {
	t.Parallel()

	c := CourseRecord{Code: "CS101", Credits: 3}
	if c.HasPrerequisites() {
		t.Error("Expected no prerequisites")
	}

	c.Prerequisites = []string{"CS100"}
	if !c.HasPrerequisites() {
		t.Error("Expected prerequisites")
	}
}
