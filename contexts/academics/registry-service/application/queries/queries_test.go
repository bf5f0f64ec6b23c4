package queries

import (
	"context"
	"testing"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/adapters/memory"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

func seedCourses(t *testing.T, store *memory.Store, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		if _, err := store.SaveCourse(context.Background(), entities.Course{
			Name:    "Course",
			Acronym: "C",
		}); err != nil {
			t.Fatalf("seed course: %v", err)
		}
	}
}

func TestListCoursesNormalizesPage(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 3)
	list := ListCoursesUseCase{Courses: store}

	// Negative page and size clamp instead of failing.
	result, err := list.Execute(context.Background(), ports.Page{Number: -5, Size: -1})
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if result.Page.Number != 0 || result.Page.Size != 1 {
		t.Fatalf("normalized page = %+v, want number=0 size=1", result.Page)
	}
	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}
	if result.Total != 3 {
		t.Fatalf("total = %d, want 3", result.Total)
	}
}

func TestListCoursesPastEndIsEmpty(t *testing.T) {
	store := memory.NewStore()
	seedCourses(t, store, 2)
	list := ListCoursesUseCase{Courses: store}

	result, err := list.Execute(context.Background(), ports.Page{Number: 5, Size: 10})
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(result.Items))
	}
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
}

func TestGetCourseMissing(t *testing.T) {
	store := memory.NewStore()
	get := GetCourseUseCase{Courses: store}

	if _, err := get.Execute(context.Background(), 42); err == nil {
		t.Fatal("expected not found error")
	}
}
