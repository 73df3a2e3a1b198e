package sqlinline

// QInsertDonation returns no row when the payment id is already recorded.
const QInsertDonation = `--sql 755ebbb9-cf09-47ef-a7c2-a15af050c1f0
insert into donations (id, donor_name, donor_email, amount, animal_id, payment_id, created_at)
values ($1, $2, $3, $4, $5, $6, now())
on conflict (payment_id) do nothing
returning created_at;
`

const QListDonationsPopulated = `--sql c2d1ba89-e033-449e-90ae-f1b1b25dfe7b
select d.id, d.donor_name, d.donor_email, d.amount, d.animal_id, d.payment_id, d.created_at,
       a.id, a.name, a.description, a.image_url, a.type, a.category, a.created_at, a.updated_at
from donations d
left join animals a on a.id = d.animal_id
order by d.created_at desc, d.id desc;
`

const QSelectDonationByID = `--sql 1ef79c0b-9655-45a2-88ca-4c4bc4d543be
select d.id, d.donor_name, d.donor_email, d.amount, d.animal_id, d.payment_id, d.created_at,
       a.id, a.name, a.description, a.image_url, a.type, a.category, a.created_at, a.updated_at
from donations d
left join animals a on a.id = d.animal_id
where d.id = $1
limit 1;
`

const QSelectDonationByPaymentID = `--sql 88b82e50-ec38-406a-8e03-c1f87e4169d9
select d.id, d.donor_name, d.donor_email, d.amount, d.animal_id, d.payment_id, d.created_at,
       a.id, a.name, a.description, a.image_url, a.type, a.category, a.created_at, a.updated_at
from donations d
left join animals a on a.id = d.animal_id
where d.payment_id = $1
limit 1;
`

const QListDanglingDonations = `--sql 73bbfefc-12c0-4714-824f-4f888c8ad5af
select d.id, d.donor_name, d.donor_email, d.amount, d.animal_id, d.payment_id, d.created_at
from donations d
left join animals a on a.id = d.animal_id
where a.id is null
order by d.created_at desc, d.id desc;
`

const QDonationSummary = `--sql b337b3ff-b67c-4f92-ac1f-2c1918131d53
select count(*), coalesce(sum(amount), 0)::double precision
from donations;
`
