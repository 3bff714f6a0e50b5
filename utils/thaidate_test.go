package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDateCanonicalThaiForm(t *testing.T) {
	result := ResolveDate("โอนเงินสำเร็จ 15 มกราคม 2567 เวลา 10:00")

	assert.Equal(t, DateResolved, result.Status)
	assert.Equal(t, "15 มกราคม 2567", result.Display)
	assert.Equal(t, 15, result.Day)
	assert.Equal(t, 1, result.Month)
	assert.Equal(t, 2024, result.Year)
}

func TestResolveDateAbbreviatedMonth(t *testing.T) {
	result := ResolveDate("5 ก.พ. 2568")

	assert.Equal(t, DateResolved, result.Status)
	assert.Equal(t, "5 กุมภาพันธ์ 2568", result.Display)
	assert.Equal(t, 2, result.Month)
	assert.Equal(t, 2025, result.Year)
}

func TestResolveDateNumericFallback(t *testing.T) {
	result := ResolveDate("โอนเงิน 15/01/2024 สำเร็จ")

	assert.Equal(t, DateResolved, result.Status)
	assert.Equal(t, 15, result.Day)
	assert.Equal(t, 1, result.Month)
	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, "15 มกราคม 2024", result.Display)
}

func TestResolveDateTakesLastNumberBeforeMonth(t *testing.T) {
	// The 99 earlier in the text must not be mistaken for the day.
	result := ResolveDate("รายการที่ 99 วันที่ 7 มีนาคม 2567")

	assert.Equal(t, DateResolved, result.Status)
	assert.Equal(t, 7, result.Day)
	assert.Equal(t, 3, result.Month)
}

func TestResolveDateImpossibleDayIsPartial(t *testing.T) {
	result := ResolveDate("31 ก.พ. 2567")

	assert.Equal(t, DatePartial, result.Status)
	assert.Equal(t, "31 ก.พ. 2567", result.Display)
	assert.Zero(t, result.Day)
}

func TestResolveDateOutOfRangeComponentsArePartial(t *testing.T) {
	result := ResolveDate("45/13/2024")

	assert.Equal(t, DatePartial, result.Status)
	assert.Equal(t, "45 13 2024", result.Display)
}

func TestResolveDateNotFound(t *testing.T) {
	assert.Equal(t, DateNotFound, ResolveDate("ไม่มีตัวเลขใดๆ").Status)
}

func TestResolveDateMonthWithoutPrecedingDay(t *testing.T) {
	assert.Equal(t, DateNotFound, ResolveDate("มกราคม 2567").Status)
}
