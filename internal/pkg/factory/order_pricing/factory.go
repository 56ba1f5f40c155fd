package order_pricing

// стоимость доставки в минимальных денежных единицах
const flatDeliveryCharge = 250

// PricingFactory считает стоимость доставки для заказа.
// Пока тариф плоский, сюда же лягут пороги бесплатной доставки.
type PricingFactory struct{}

func NewPricingFactory() *PricingFactory {
	return &PricingFactory{}
}

func (f *PricingFactory) DeliveryCharge(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return flatDeliveryCharge
}
