package view

import (
	"html/template"
	"io"
)

var cartTmpl = template.Must(template.New("cart").Parse(
	`{{if .Empty}}<p class="empty-cart">{{.EmptyText}}</p>{{else}}{{range .Rows}}
<div class="cart-item">
    <div class="cart-item-info">
        <h4>{{.Name}}</h4>
        <p class="cart-item-price">{{.PriceLine}}</p>
        <p class="cart-item-subtotal">{{.Subtotal}}</p>
    </div>
    <div class="cart-item-controls">
        <button class="cart-qty-btn" data-index="{{.Index}}" data-action="decrease">-</button>
        <span class="cart-qty-display">{{.Quantity}}</span>
        <button class="cart-qty-btn" data-index="{{.Index}}" data-action="increase">+</button>
        <button class="remove-item-btn" data-index="{{.Index}}">Remove</button>
    </div>
</div>{{end}}{{end}}
<span id="cart-total">{{.Total}}</span>
`))

var orderTmpl = template.Must(template.New("order").Parse(
	`{{if .Empty}}<p>{{.EmptyText}}</p>{{else}}<ul>{{range .Rows}}
    <li>
        {{.Name}} x {{.Quantity}}
        <span>{{.Subtotal}}</span>
    </li>{{end}}
</ul><div class="order-total"><strong>Total: {{.Total}}</strong></div>{{end}}
`))

// CartFragment - HTML содержимого окна корзины.
func CartFragment(w io.Writer, v CartView) error { return cartTmpl.Execute(w, v) }

// OrderFragment - HTML содержимого окна заказа.
func OrderFragment(w io.Writer, v OrderView) error { return orderTmpl.Execute(w, v) }
