// Package delivery provides the Delivery aggregate and its status state machine.
//
// A delivery is linked to its order by the order identity; the denormalized
// order number is kept only as a display token and as a legacy lookup key for
// the cancellation protocol. Schedule changes are guarded: delivered and
// cancelled deliveries cannot be rescheduled.
package delivery
