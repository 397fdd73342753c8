// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package values

import (
	"fmt"
	"time"
)

const (
	microsPerSecond = 1_000_000
	microsPerDay    = 24 * 60 * 60 * microsPerSecond
)

// Date and timestamp columns count from 2000-01-01, not the Unix
// epoch.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func formatDate(days int64) string {
	return epoch.AddDate(0, 0, int(days)).Format("2006-01-02")
}

// timestampFromMicros builds the time through second arithmetic rather
// than a single Duration, which cannot span more than about 292 years
// and would silently wrap for dates far from the epoch.
func timestampFromMicros(micros int64) time.Time {
	secs := micros / microsPerSecond
	rem := micros % microsPerSecond
	return time.Unix(epoch.Unix()+secs, rem*1000).UTC()
}

func formatTimestamp(micros int64) string {
	return timestampFromMicros(micros).Format("2006-01-02 15:04:05")
}

func formatTimestampTz(micros int64, offsetHours int) string {
	t := timestampFromMicros(micros).Add(time.Duration(offsetHours) * time.Hour)
	return fmt.Sprintf("%s%+03d", t.Format("2006-01-02 15:04:05"), offsetHours)
}

// formatTime renders microseconds since midnight as HH:MM:SS, wrapping
// around the day and truncating sub-second precision.
func formatTime(micros int64) string {
	secs := DayMicros(micros) / microsPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

func formatTimeTz(data []byte) string {
	micros, offsetHours := DecodeTimeTz(data)
	return fmt.Sprintf("%s%+03d", formatTime(micros), offsetHours)
}

func formatInterval(micros int64) string {
	secs := micros / microsPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
