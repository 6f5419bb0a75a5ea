package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	t.Helper()
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
	if err := postgresql.Migrate(context.Background(), testAttendanceDB); err != nil {
		t.Fatal("Failed to migrate test database: " + err.Error())
	}
}

func newTestAttendanceService() attendance.AttendanceService {
	attendanceRepo := postgresql.NewAttendanceRepository(testAttendanceDB)
	employeeRepo := postgresql.NewEmployeeRepository(testAttendanceDB)
	return NewAttendanceService(testAttendanceDB, attendanceRepo, employeeRepo)
}

// createAttendanceTestEmployee inserts an employee row and returns its
// external identifier.
func createAttendanceTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	suffix := uuid.NewString()[:8]
	externalID := "EMP-" + suffix
	_, err := testAttendanceDB.Exec(ctx, `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
	`, externalID, "Test Employee "+suffix, fmt.Sprintf("att-%s@example.com", suffix), "Operations")
	require.NoError(t, err)
	return externalID
}

func TestAttendanceService_Mark_Success(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()
	externalID := createAttendanceTestEmployee(t, ctx)

	created, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: externalID,
		Date:       "2024-01-10",
		Status:     "Present",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "2024-01-10", created.Date)
	assert.Equal(t, "Present", created.Status)
}

func TestAttendanceService_Mark_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "NO-SUCH-" + uuid.NewString()[:8],
		Date:       "2024-01-10",
		Status:     "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_ValidationError(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "not-a-date",
		Status:     "Present",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestAttendanceService_Mark_DuplicateDay(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()
	externalID := createAttendanceTestEmployee(t, ctx)

	first, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: externalID,
		Date:       "2024-01-10",
		Status:     "Present",
	})
	require.NoError(t, err)

	// Marking is not an upsert: a different status on the same day conflicts
	_, err = svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: externalID,
		Date:       "2024-01-10",
		Status:     "Absent",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)

	// History shows only the first record
	history, err := svc.GetHistory(ctx, externalID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.Date, history[0].Date)
	assert.Equal(t, "Present", history[0].Status)
}

func TestAttendanceService_GetHistory_NotFound(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()

	_, err := svc.GetHistory(ctx, "NO-SUCH-"+uuid.NewString()[:8])
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_GetHistory_ReturnsAllRecords(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()
	externalID := createAttendanceTestEmployee(t, ctx)

	marked := map[string]string{
		"2024-01-08": "Present",
		"2024-01-09": "Absent",
		"2024-01-10": "Present",
	}
	for date, status := range marked {
		_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
			EmployeeID: externalID,
			Date:       date,
			Status:     status,
		})
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, externalID)
	require.NoError(t, err)
	require.Len(t, history, len(marked))

	// Order is unspecified; compare as a set of (date, status) pairs
	got := make(map[string]string, len(history))
	for _, day := range history {
		got[day.Date] = day.Status
	}
	assert.Equal(t, marked, got)
}

func TestAttendanceService_GetHistory_EmptyForNewEmployee(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)

	svc := newTestAttendanceService()
	externalID := createAttendanceTestEmployee(t, ctx)

	history, err := svc.GetHistory(ctx, externalID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
