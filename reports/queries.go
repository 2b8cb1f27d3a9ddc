package reports

// Fixed analytical query templates over the external LMS schema. All of them
// are static strings; filter values are bound as @p1..@pN, never spliced into
// the SQL text.

// HealthProbeQuery is the connectivity probe used by the health endpoint.
const HealthProbeQuery = `SELECT 1 AS probe`

// DashboardSummaryQuery returns overall LMS totals and the completion rate.
const DashboardSummaryQuery = `
	SELECT
		(SELECT COUNT(*) FROM Users WHERE is_active = 1) as total_users,
		(SELECT COUNT(*) FROM Users WHERE role = 'student' AND is_active = 1) as total_students,
		(SELECT COUNT(*) FROM Users WHERE role = 'instructor' AND is_active = 1) as total_instructors,
		(SELECT COUNT(*) FROM Courses WHERE is_active = 1) as total_courses,
		(SELECT COUNT(*) FROM Enrollments) as total_enrollments,
		(SELECT COUNT(*) FROM Enrollments WHERE status = 'completed') as completed_enrollments,
		(SELECT COUNT(*) FROM Enrollments WHERE status = 'active') as active_enrollments,
		CASE
			WHEN (SELECT COUNT(*) FROM Enrollments) > 0
			THEN CAST((SELECT COUNT(*) FROM Enrollments WHERE status = 'completed') AS FLOAT) /
				 CAST((SELECT COUNT(*) FROM Enrollments) AS FLOAT) * 100
			ELSE 0
		END as completion_rate`

// CoursesQuery lists active courses with enrollment statistics.
const CoursesQuery = `
	SELECT
		c.course_id,
		c.course_name,
		c.course_code,
		c.category,
		c.difficulty_level,
		c.duration_hours,
		c.created_at,
		u.first_name + ' ' + u.last_name as instructor_name,
		COUNT(DISTINCT e.enrollment_id) as total_enrollments,
		COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) as completed_count,
		COUNT(DISTINCT CASE WHEN e.status = 'active' THEN e.enrollment_id END) as active_count,
		AVG(e.progress_percentage) as avg_progress,
		CASE
			WHEN COUNT(DISTINCT e.enrollment_id) > 0
			THEN CAST(COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) AS FLOAT) /
				 CAST(COUNT(DISTINCT e.enrollment_id) AS FLOAT) * 100
			ELSE 0
		END as completion_rate
	FROM Courses c
	LEFT JOIN Users u ON c.instructor_id = u.user_id
	LEFT JOIN Enrollments e ON c.course_id = e.course_id
	WHERE c.is_active = 1
	GROUP BY
		c.course_id, c.course_name, c.course_code, c.category,
		c.difficulty_level, c.duration_hours, c.created_at,
		u.first_name, u.last_name
	ORDER BY c.course_name`

// CourseDetailQuery returns one course with module/lesson/enrollment counts.
const CourseDetailQuery = `
	SELECT
		c.course_id,
		c.course_name,
		c.course_code,
		c.description,
		c.category,
		c.difficulty_level,
		c.duration_hours,
		c.created_at,
		u.first_name + ' ' + u.last_name as instructor_name,
		u.email as instructor_email,
		COUNT(DISTINCT m.module_id) as total_modules,
		COUNT(DISTINCT l.lesson_id) as total_lessons,
		COUNT(DISTINCT e.enrollment_id) as total_enrollments
	FROM Courses c
	LEFT JOIN Users u ON c.instructor_id = u.user_id
	LEFT JOIN Modules m ON c.course_id = m.course_id
	LEFT JOIN Lessons l ON m.module_id = l.module_id
	LEFT JOIN Enrollments e ON c.course_id = e.course_id
	WHERE c.course_id = @p1
	GROUP BY
		c.course_id, c.course_name, c.course_code, c.description,
		c.category, c.difficulty_level, c.duration_hours, c.created_at,
		u.first_name, u.last_name, u.email`

// EnrollmentsQuery lists all enrollments with user and course details.
const EnrollmentsQuery = `
	SELECT
		e.enrollment_id,
		e.user_id,
		u.username,
		u.first_name + ' ' + u.last_name as student_name,
		u.email as student_email,
		e.course_id,
		c.course_name,
		c.category,
		c.difficulty_level,
		e.enrollment_date,
		e.completion_date,
		e.progress_percentage,
		e.status,
		DATEDIFF(day, e.enrollment_date, GETDATE()) as days_enrolled,
		CASE
			WHEN e.completion_date IS NOT NULL
			THEN DATEDIFF(day, e.enrollment_date, e.completion_date)
			ELSE NULL
		END as days_to_complete
	FROM Enrollments e
	JOIN Users u ON e.user_id = u.user_id
	JOIN Courses c ON e.course_id = c.course_id
	ORDER BY e.enrollment_date DESC`

// EnrollmentTrendsQuery aggregates enrollments by month and category.
const EnrollmentTrendsQuery = `
	SELECT
		YEAR(e.enrollment_date) as enrollment_year,
		MONTH(e.enrollment_date) as enrollment_month,
		FORMAT(e.enrollment_date, 'yyyy-MM') as year_month,
		c.category,
		COUNT(e.enrollment_id) as enrollment_count,
		COUNT(CASE WHEN e.status = 'completed' THEN e.enrollment_id END) as completed_count,
		AVG(e.progress_percentage) as avg_progress
	FROM Enrollments e
	JOIN Courses c ON e.course_id = c.course_id
	GROUP BY
		YEAR(e.enrollment_date),
		MONTH(e.enrollment_date),
		FORMAT(e.enrollment_date, 'yyyy-MM'),
		c.category
	ORDER BY enrollment_year, enrollment_month, c.category`

// StudentsQuery lists active students with their enrollment statistics.
const StudentsQuery = `
	SELECT
		u.user_id,
		u.username,
		u.first_name + ' ' + u.last_name as student_name,
		u.email,
		u.created_at as registration_date,
		COUNT(DISTINCT e.enrollment_id) as total_enrollments,
		COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) as completed_courses,
		COUNT(DISTINCT CASE WHEN e.status = 'active' THEN e.enrollment_id END) as active_courses,
		AVG(e.progress_percentage) as avg_progress,
		MAX(e.enrollment_date) as last_enrollment_date,
		DATEDIFF(day, MAX(e.enrollment_date), GETDATE()) as days_since_last_enrollment
	FROM Users u
	LEFT JOIN Enrollments e ON u.user_id = e.user_id
	WHERE u.role = 'student' AND u.is_active = 1
	GROUP BY
		u.user_id, u.username, u.first_name, u.last_name,
		u.email, u.created_at
	ORDER BY u.created_at DESC`

// StudentProgressQuery returns per-course progress for one student.
const StudentProgressQuery = `
	SELECT
		e.enrollment_id,
		c.course_name,
		c.category,
		e.enrollment_date,
		e.progress_percentage,
		e.status,
		e.completion_date,
		COUNT(DISTINCT up.progress_id) as lessons_started,
		COUNT(DISTINCT CASE WHEN up.completed = 1 THEN up.progress_id END) as lessons_completed,
		SUM(up.time_spent_minutes) as total_time_spent_minutes,
		AVG(up.score) as avg_quiz_score
	FROM Enrollments e
	JOIN Courses c ON e.course_id = c.course_id
	LEFT JOIN UserProgress up ON e.user_id = up.user_id
	LEFT JOIN Lessons l ON up.lesson_id = l.lesson_id
	LEFT JOIN Modules m ON l.module_id = m.module_id
	WHERE e.user_id = @p1 AND m.course_id = c.course_id
	GROUP BY
		e.enrollment_id, c.course_name, c.category,
		e.enrollment_date, e.progress_percentage, e.status, e.completion_date`

// DetailedProgressQuery returns lesson-level progress for all students.
const DetailedProgressQuery = `
	SELECT
		u.user_id,
		u.first_name + ' ' + u.last_name as student_name,
		c.course_id,
		c.course_name,
		c.category,
		m.module_id,
		m.module_name,
		l.lesson_id,
		l.lesson_name,
		l.lesson_type,
		l.duration_minutes as lesson_duration,
		up.completed,
		up.completion_date,
		up.time_spent_minutes,
		up.score,
		CASE
			WHEN up.completed = 1 AND l.duration_minutes > 0
			THEN CAST(up.time_spent_minutes AS FLOAT) / CAST(l.duration_minutes AS FLOAT) * 100
			ELSE NULL
		END as completion_efficiency
	FROM UserProgress up
	JOIN Users u ON up.user_id = u.user_id
	JOIN Lessons l ON up.lesson_id = l.lesson_id
	JOIN Modules m ON l.module_id = m.module_id
	JOIN Courses c ON m.course_id = c.course_id
	WHERE u.role = 'student'
	ORDER BY u.user_id, c.course_id, m.module_order, l.lesson_order`

// CategoryPerformanceQuery aggregates performance metrics per course category.
const CategoryPerformanceQuery = `
	SELECT
		c.category,
		COUNT(DISTINCT c.course_id) as total_courses,
		COUNT(DISTINCT e.enrollment_id) as total_enrollments,
		COUNT(DISTINCT e.user_id) as unique_students,
		AVG(e.progress_percentage) as avg_progress,
		COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) as completed_enrollments,
		CASE
			WHEN COUNT(DISTINCT e.enrollment_id) > 0
			THEN CAST(COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) AS FLOAT) /
				 CAST(COUNT(DISTINCT e.enrollment_id) AS FLOAT) * 100
			ELSE 0
		END as completion_rate,
		AVG(CAST(up.score AS FLOAT)) as avg_quiz_score,
		SUM(up.time_spent_minutes) as total_learning_minutes
	FROM Courses c
	LEFT JOIN Enrollments e ON c.course_id = e.course_id
	LEFT JOIN Modules m ON c.course_id = m.course_id
	LEFT JOIN Lessons l ON m.module_id = l.module_id
	LEFT JOIN UserProgress up ON l.lesson_id = up.lesson_id
	WHERE c.is_active = 1
	GROUP BY c.category
	ORDER BY c.category`

// QuizPerformanceQuery returns per-quiz attempt and pass statistics.
const QuizPerformanceQuery = `
	SELECT
		q.quiz_id,
		q.quiz_name,
		c.course_name,
		c.category,
		l.lesson_name,
		COUNT(DISTINCT uqa.attempt_id) as total_attempts,
		COUNT(DISTINCT uqa.user_id) as unique_students,
		AVG(CAST(uqa.score AS FLOAT)) as avg_score,
		AVG(CAST(uqa.total_points AS FLOAT)) as avg_total_points,
		COUNT(DISTINCT CASE WHEN uqa.passed = 1 THEN uqa.attempt_id END) as passed_attempts,
		CASE
			WHEN COUNT(DISTINCT uqa.attempt_id) > 0
			THEN CAST(COUNT(DISTINCT CASE WHEN uqa.passed = 1 THEN uqa.attempt_id END) AS FLOAT) /
				 CAST(COUNT(DISTINCT uqa.attempt_id) AS FLOAT) * 100
			ELSE 0
		END as pass_rate,
		AVG(DATEDIFF(minute, uqa.start_time, uqa.end_time)) as avg_duration_minutes
	FROM Quizzes q
	JOIN Lessons l ON q.lesson_id = l.lesson_id
	JOIN Modules m ON l.module_id = m.module_id
	JOIN Courses c ON m.course_id = c.course_id
	LEFT JOIN UserQuizAttempts uqa ON q.quiz_id = uqa.quiz_id
	WHERE q.is_active = 1
	GROUP BY
		q.quiz_id, q.quiz_name, c.course_name, c.category, l.lesson_name
	ORDER BY c.course_name, l.lesson_name`

// EngagementMetricsQuery buckets students into engagement tiers by recency.
const EngagementMetricsQuery = `
	SELECT
		u.user_id,
		u.first_name + ' ' + u.last_name as student_name,
		COUNT(DISTINCT e.enrollment_id) as total_enrollments,
		SUM(up.time_spent_minutes) as total_learning_minutes,
		COUNT(DISTINCT up.lesson_id) as unique_lessons_accessed,
		COUNT(DISTINCT CASE WHEN up.completed = 1 THEN up.lesson_id END) as lessons_completed,
		MAX(up.updated_at) as last_activity_date,
		DATEDIFF(day, MAX(up.updated_at), GETDATE()) as days_since_last_activity,
		AVG(e.progress_percentage) as avg_course_progress,
		CASE
			WHEN DATEDIFF(day, MAX(up.updated_at), GETDATE()) <= 7 THEN 'Active'
			WHEN DATEDIFF(day, MAX(up.updated_at), GETDATE()) <= 30 THEN 'Moderately Active'
			ELSE 'Inactive'
		END as engagement_status
	FROM Users u
	LEFT JOIN Enrollments e ON u.user_id = e.user_id
	LEFT JOIN UserProgress up ON u.user_id = up.user_id
	WHERE u.role = 'student' AND u.is_active = 1
	GROUP BY u.user_id, u.first_name, u.last_name
	HAVING COUNT(DISTINCT e.enrollment_id) > 0
	ORDER BY total_learning_minutes DESC`

// CompletionFunnelQuery returns per-course enrollment-to-completion funnels.
const CompletionFunnelQuery = `
	WITH CourseFunnel AS (
		SELECT
			c.course_id,
			c.course_name,
			c.category,
			COUNT(DISTINCT e.enrollment_id) as enrolled,
			COUNT(DISTINCT CASE WHEN e.progress_percentage > 0 THEN e.enrollment_id END) as started,
			COUNT(DISTINCT CASE WHEN e.progress_percentage >= 25 THEN e.enrollment_id END) as quarter_complete,
			COUNT(DISTINCT CASE WHEN e.progress_percentage >= 50 THEN e.enrollment_id END) as half_complete,
			COUNT(DISTINCT CASE WHEN e.progress_percentage >= 75 THEN e.enrollment_id END) as three_quarter_complete,
			COUNT(DISTINCT CASE WHEN e.status = 'completed' THEN e.enrollment_id END) as completed
		FROM Courses c
		LEFT JOIN Enrollments e ON c.course_id = e.course_id
		WHERE c.is_active = 1
		GROUP BY c.course_id, c.course_name, c.category
	)
	SELECT
		*,
		CASE WHEN enrolled > 0 THEN CAST(started AS FLOAT) / enrolled * 100 ELSE 0 END as start_rate,
		CASE WHEN enrolled > 0 THEN CAST(completed AS FLOAT) / enrolled * 100 ELSE 0 END as completion_rate
	FROM CourseFunnel
	ORDER BY course_name`

// TimeAnalysisQuery aggregates the last six months of learning activity.
const TimeAnalysisQuery = `
	SELECT
		FORMAT(up.updated_at, 'yyyy-MM-dd') as date,
		FORMAT(up.updated_at, 'yyyy-MM') as year_month,
		DATEPART(WEEKDAY, up.updated_at) as day_of_week,
		DATEPART(HOUR, up.updated_at) as hour_of_day,
		c.category,
		COUNT(DISTINCT up.user_id) as active_students,
		COUNT(DISTINCT up.lesson_id) as lessons_accessed,
		SUM(up.time_spent_minutes) as total_minutes,
		COUNT(CASE WHEN up.completed = 1 THEN 1 END) as lessons_completed
	FROM UserProgress up
	JOIN Lessons l ON up.lesson_id = l.lesson_id
	JOIN Modules m ON l.module_id = m.module_id
	JOIN Courses c ON m.course_id = c.course_id
	WHERE up.updated_at >= DATEADD(month, -6, GETDATE())
	GROUP BY
		FORMAT(up.updated_at, 'yyyy-MM-dd'),
		FORMAT(up.updated_at, 'yyyy-MM'),
		DATEPART(WEEKDAY, up.updated_at),
		DATEPART(HOUR, up.updated_at),
		c.category
	ORDER BY date DESC`

// TableMetadataQuery reflects the schema of the known LMS tables.
const TableMetadataQuery = `
	SELECT
		t.TABLE_NAME,
		c.COLUMN_NAME,
		c.DATA_TYPE,
		c.IS_NULLABLE,
		c.CHARACTER_MAXIMUM_LENGTH
	FROM INFORMATION_SCHEMA.TABLES t
	JOIN INFORMATION_SCHEMA.COLUMNS c ON t.TABLE_NAME = c.TABLE_NAME
	WHERE t.TABLE_TYPE = 'BASE TABLE'
		AND t.TABLE_SCHEMA = 'dbo'
		AND t.TABLE_NAME IN ('Users', 'Courses', 'Modules', 'Lessons',
							 'Enrollments', 'UserProgress', 'Quizzes',
							 'UserQuizAttempts')
	ORDER BY t.TABLE_NAME, c.ORDINAL_POSITION`

// Filtered enrollment listing. The base projection matches the unfiltered
// listing used by the BI tool; optional clauses are appended from the fixed
// fragments in filter.go.
const enrollmentFilterBase = `
	SELECT
		e.enrollment_id,
		u.first_name + ' ' + u.last_name as student_name,
		c.course_name,
		c.category,
		e.enrollment_date,
		e.progress_percentage,
		e.status
	FROM Enrollments e
	JOIN Users u ON e.user_id = u.user_id
	JOIN Courses c ON e.course_id = c.course_id
	WHERE 1=1`

const enrollmentFilterOrder = `
	ORDER BY e.enrollment_date DESC`
