// Package scheduling owns class sessions and what happens around them:
// periods, post-session room verifications and attendance. Verification and
// attendance writes are scope-sensitive; the caller's contextual role in the
// period's class is resolved once per operation and fed to pure policy
// functions, with the global ADMIN role as the escape hatch.
package scheduling
