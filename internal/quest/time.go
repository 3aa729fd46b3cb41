package quest

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control timestamps and elapsed-time math.
var timeNow = time.Now
