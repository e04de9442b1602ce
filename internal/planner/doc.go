// Package planner holds the pure read-path logic of the plant keeper: the
// dashboard aggregation over every plant's schedules, the schedule rollover
// performed when a task is completed and the tag index used by the plant
// list filter.
//
// Nothing in this package performs I/O. Callers fetch plants and schedules
// through the store and hand over already materialized snapshots.
package planner
