package reports

// Report declares one fixed reporting endpoint: the route it answers on, the
// query template it executes, and the numeric path parameters bound into the
// template in order.
type Report struct {
	Name       string
	Path       string
	Query      string
	PathParams []string
}

// Registry is the declarative route table for every fixed report. The
// health, filtered-enrollments, and endpoints-list routes carry behavior of
// their own and are wired separately in the router.
var Registry = []Report{
	{Name: "dashboard_summary", Path: "/api/dashboard/summary", Query: DashboardSummaryQuery},
	{Name: "courses", Path: "/api/courses", Query: CoursesQuery},
	{Name: "course_detail", Path: "/api/courses/:course_id", Query: CourseDetailQuery, PathParams: []string{"course_id"}},
	{Name: "enrollments", Path: "/api/enrollments", Query: EnrollmentsQuery},
	{Name: "enrollment_trends", Path: "/api/enrollments/trends", Query: EnrollmentTrendsQuery},
	{Name: "students", Path: "/api/students", Query: StudentsQuery},
	{Name: "student_progress", Path: "/api/students/:student_id/progress", Query: StudentProgressQuery, PathParams: []string{"student_id"}},
	{Name: "detailed_progress", Path: "/api/progress/detailed", Query: DetailedProgressQuery},
	{Name: "category_performance", Path: "/api/categories/performance", Query: CategoryPerformanceQuery},
	{Name: "quiz_performance", Path: "/api/quiz/performance", Query: QuizPerformanceQuery},
	{Name: "engagement_metrics", Path: "/api/engagement/metrics", Query: EngagementMetricsQuery},
	{Name: "completion_funnel", Path: "/api/completion/funnel", Query: CompletionFunnelQuery},
	{Name: "time_analysis", Path: "/api/time/analysis", Query: TimeAnalysisQuery},
	{Name: "table_metadata", Path: "/api/metadata/tables", Query: TableMetadataQuery},
}
