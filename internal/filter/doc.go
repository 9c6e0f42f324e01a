// Package filter runs user-supplied Lua scripts over outgoing notifications.
//
// A script defines a single global function:
//
//	function filter(title, body, urgency)
//	    -- title is nil when the notification has none
//	    -- return false to suppress the notification
//	    -- return true to pass it through unchanged
//	    -- return true, title, body, urgency to rewrite it
//	end
//
// The Lua state runs with a restricted library set: base, table, string and
// math. io, os, debug and package are deliberately not opened; a notification
// filter has no business touching the file system.
//
// A loaded filter is confined to the goroutine of the session that owns it. The
// underlying Lua state is not goroutine-safe, and the session dispatch loop
// is already serialized, so no locking is added here.
package filter
