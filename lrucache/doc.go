/*
Copyright © 2024 tmslee.

Released under MIT license.
*/

// Package lrucache provides a generic fixed-capacity in-memory cache
// with LRU eviction policy and Prometheus metrics.
package lrucache
