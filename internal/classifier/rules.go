package classifier

import (
	"strings"

	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
)

// rule is one entry of the ordered keyword table. A rule matches when any
// of its keywords appears in the lowercased report text; apply then fills
// in the summary, possibly branching on secondary keywords.
type rule struct {
	keywords []string
	apply    func(text string, s *domain.BugSummary)
}

// rules is evaluated top to bottom with first-match-wins semantics. Order
// is load-bearing: "500 error caused a crash" must classify as
// server-error, not crash, and the crash rule shadows the null-reference
// rule for texts matching both.
var rules = []rule{
	{
		keywords: []string{"500", "internal server error"},
		apply: func(text string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryServerError
			s.ActualBehavior = "Server returns 500 Internal Server Error"
			s.ExpectedBehavior = "Server should handle requests without errors"
			if containsAny(text, []string{"upload", "entity too large", "file"}) {
				s.RootCause = "File upload exceeds server-configured maximum size limit. The server's request body size limit is smaller than the uploaded file."
				s.SuggestedSolution = "Increase server file upload limit. In Express: use multer with limits: { fileSize: 10 * 1024 * 1024 }. In nginx: set client_max_body_size 10M; Add proper validation and user-friendly error messages for file size limits."
			} else {
				s.RootCause = "Server-side exception thrown during request processing. Likely caused by unhandled error in backend code, database connection failure, or misconfigured middleware."
				s.SuggestedSolution = "Check server logs for the root cause. Add proper error handling and logging. Implement graceful error responses with meaningful messages. Review recent code changes that might have introduced the error."
			}
		},
	},
	{
		keywords: []string{"404", "not found"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryRoutingError
			s.ActualBehavior = "Resource or route not found (404 error)"
			s.ExpectedBehavior = "All routes should be properly configured"
			s.RootCause = "Requested route or API endpoint is not registered in the router configuration. Could be caused by typo in URL, missing route definition, or incorrect base path."
			s.SuggestedSolution = "Verify route definitions in your router configuration. Check for typos in URLs. Ensure API endpoints are correctly registered. For SPAs, configure server to redirect all routes to index.html."
		},
	},
	{
		keywords: []string{"crash", "white screen", "blank screen"},
		apply: func(text string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryCrash
			s.ActualBehavior = "Application crashes or displays blank/white screen"
			s.ExpectedBehavior = "Application should remain stable and display content"
			switch {
			case containsAny(text, []string{"save", "button"}):
				s.RootCause = "Null or undefined object accessed during save operation. Likely caused by form data not being properly validated or state being accessed before initialization."
				s.SuggestedSolution = "Add null checks: `if (data && data.property)` before accessing. Use optional chaining: `data?.property`. Add error boundaries: wrap components with try-catch. Verify form data is properly validated before saving."
			case containsAny(text, []string{"undefined", "null", "cannot read property"}):
				s.RootCause = "Attempting to access property on null or undefined object. This happens when component renders before data is loaded, or when an object is not properly initialized in state."
				s.SuggestedSolution = "Fix null/undefined reference. Add defensive checks: `const value = object?.property ?? defaultValue`. Ensure all required data is loaded before component renders. Use PropTypes or TypeScript for type checking."
			default:
				s.RootCause = "Unhandled exception thrown in component rendering or event handler. Could be caused by type mismatch, missing dependency, or logic error in recent code changes."
				s.SuggestedSolution = "Add React Error Boundaries to catch crashes. Check browser console for detailed stack trace. Review recent code changes. Add logging to identify the crash point. Ensure all async operations have error handling."
			}
		},
	},
	{
		keywords: []string{"cannot read property", "undefined", "typeerror"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryNullReference
			s.ActualBehavior = "Attempting to access property of null or undefined object"
			s.ExpectedBehavior = "All objects should be properly initialized before use"
			s.RootCause = "Object is null or undefined when property access is attempted. This occurs when data hasn't loaded yet, API response is missing expected fields, or component state is accessed before initialization."
			s.SuggestedSolution = "Add null/undefined checks: `if (obj && obj.property)`. Use optional chaining: `obj?.property`. Provide default values: `const value = obj?.property || defaultValue`. Check that API data is loaded before rendering."
		},
	},
	{
		keywords: []string{"network", "fetch", "api", "timeout", "cors"},
		apply: func(text string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryNetworkError
			s.ActualBehavior = "Network request fails or times out"
			s.ExpectedBehavior = "API calls should complete successfully"
			if strings.Contains(text, "cors") {
				s.RootCause = "CORS (Cross-Origin Resource Sharing) policy blocking request from different origin. Server doesn't have proper CORS headers configured to allow requests from the frontend domain."
			} else {
				s.RootCause = "Network request failed due to connectivity issues, server timeout, or incorrect API endpoint URL. Could be caused by server being down, slow network, or malformed request."
			}
			s.SuggestedSolution = "Implement retry logic: `axios.get(url).catch(() => retry())`. Add timeout handling. For CORS: configure server with proper headers: `Access-Control-Allow-Origin`. Check network connectivity and API endpoint availability."
		},
	},
	{
		keywords: []string{"login", "auth", "authentication", "oauth"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryAuth
			s.ActualBehavior = "Authentication or login process fails"
			s.ExpectedBehavior = "Users should be able to authenticate successfully"
			s.RootCause = "Authentication failure caused by invalid credentials, expired tokens, misconfigured OAuth settings, or CORS issues preventing auth cookies from being set. Check token storage and validation logic."
			s.SuggestedSolution = "Verify OAuth credentials and callback URLs. Check token expiration: implement token refresh logic. Ensure secure cookie/session configuration. Review CORS settings for auth endpoints. Check network requests in DevTools."
		},
	},
	{
		keywords: []string{"ui", "display", "layout", "css", "rendering"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryUIRendering
			s.ActualBehavior = "UI elements are not displayed or positioned correctly"
			s.ExpectedBehavior = "UI should render properly across all screen sizes"
			s.RootCause = "CSS specificity conflict, z-index layering issue, or missing responsive breakpoints causing incorrect rendering. Could also be caused by JavaScript modifying DOM incorrectly."
			s.SuggestedSolution = "Inspect element with browser DevTools. Check for CSS specificity conflicts. Verify z-index layering. Test responsive breakpoints. Clear browser cache. Check for CSS syntax errors in stylesheet."
		},
	},
	{
		keywords: []string{"performance", "slow", "lag"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryPerformance
			s.ActualBehavior = "Application responds slowly or exhibits lag"
			s.ExpectedBehavior = "Application should respond quickly to user interactions"
			s.RootCause = "Performance bottleneck caused by excessive re-renders, large bundle size, unoptimized images, or inefficient algorithms. Could also be caused by memory leaks or blocking operations on main thread."
			s.SuggestedSolution = "Profile application performance using browser DevTools. Optimize rendering by memoizing components. Implement code splitting and lazy loading. Reduce bundle size and minimize re-renders."
		},
	},
	{
		keywords: []string{"memory", "leak"},
		apply: func(_ string, s *domain.BugSummary) {
			s.BugCategory = domain.CategoryMemoryLeak
			s.ActualBehavior = "Memory usage increases over time"
			s.ExpectedBehavior = "Memory usage should remain stable"
			s.RootCause = "Memory leak caused by event listeners not being cleaned up, intervals/timeouts not being cleared on unmount, or circular references preventing garbage collection."
			s.SuggestedSolution = "Remove event listeners in cleanup functions. Clear intervals/timeouts when components unmount. Avoid circular references. Use browser memory profiler to identify leaks."
		},
	},
}
